package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w-h-a/procurement/generator"
	"github.com/w-h-a/procurement/memorymanager"
	"github.com/w-h-a/procurement/memorymanager/providers/storer"
)

type fakeGenerator struct {
	response string

	lastMessages []generator.Message
}

func (g *fakeGenerator) Chat(ctx context.Context, messages []generator.Message, opts ...generator.ChatOption) (string, error) {
	g.lastMessages = messages
	return g.response, nil
}

func (g *fakeGenerator) Reason(ctx context.Context, prompt string) (string, error) {
	return g.response, nil
}

type fakeMemory struct {
	history    []string
	historyErr error
	quotes     []storer.QuoteRecord
}

func (m *fakeMemory) Initialize(ctx context.Context) error { return nil }

func (m *fakeMemory) StoreQuote(ctx context.Context, rec storer.QuoteRecord) (int64, error) {
	return 0, nil
}

func (m *fakeMemory) SearchHistory(ctx context.Context, query string, opts ...memorymanager.SearchHistoryOption) ([]string, error) {
	return m.history, m.historyErr
}

func (m *fakeMemory) GetQuote(ctx context.Context, id int64) (*storer.QuoteRecord, error) {
	return nil, nil
}

func (m *fakeMemory) ListQuotes(ctx context.Context) ([]storer.QuoteRecord, error) {
	return m.quotes, nil
}

func (m *fakeMemory) ListVendors(ctx context.Context) ([]storer.VendorPerformance, error) {
	return nil, nil
}

func (m *fakeMemory) Close() error { return nil }

func lastContent(g *fakeGenerator) string {
	return g.lastMessages[len(g.lastMessages)-1].Content
}

func TestRespondInjectsMemoryContext(t *testing.T) {
	gen := &fakeGenerator{response: "You paid **12,500 USD** last time."}
	mem := &fakeMemory{history: []string{`{"vendor_name": "Acme Steel", "total": 12500}`}}

	as := NewAssistant(WithGenerator(gen), WithMemory(mem))

	answer, err := as.Respond(context.Background(), "What did we pay Acme Steel last time?", nil)
	require.NoError(t, err)
	assert.Equal(t, "You paid **12,500 USD** last time.", answer)

	content := lastContent(gen)
	assert.Contains(t, content, "What did we pay Acme Steel last time?")
	assert.Contains(t, content, "[tool: memory_search]")
	assert.Contains(t, content, "12500")

	assert.Equal(t, "system", gen.lastMessages[0].Role)
}

func TestRespondNoMatchingRule(t *testing.T) {
	gen := &fakeGenerator{response: "Hello."}
	as := NewAssistant(WithGenerator(gen), WithMemory(&fakeMemory{}))

	_, err := as.Respond(context.Background(), "Hi there", nil)
	require.NoError(t, err)

	assert.NotContains(t, lastContent(gen), "[tool:")
}

func TestRespondRuleFailureSkipped(t *testing.T) {
	gen := &fakeGenerator{response: "I could not reach the archive."}
	mem := &fakeMemory{historyErr: errors.New("index down")}

	as := NewAssistant(WithGenerator(gen), WithMemory(mem))

	_, err := as.Respond(context.Background(), "remember the last aluminum quote?", nil)
	require.NoError(t, err)

	assert.NotContains(t, lastContent(gen), "[tool: memory_search]")
}

func TestRespondQuoteListing(t *testing.T) {
	gen := &fakeGenerator{response: "Here are your quotes."}
	mem := &fakeMemory{quotes: []storer.QuoteRecord{
		{Id: 2, VendorName: "Beta Metals", RawJSON: `{"vendor_name": "Beta Metals"}`},
		{Id: 1, VendorName: "Acme Steel", RawJSON: `{"vendor_name": "Acme Steel"}`},
	}}

	as := NewAssistant(WithGenerator(gen), WithMemory(mem))

	_, err := as.Respond(context.Background(), "Show me all quotes", nil)
	require.NoError(t, err)

	content := lastContent(gen)
	assert.Contains(t, content, "[tool: quote_listing]")
	assert.Contains(t, content, "Beta Metals")
	assert.Contains(t, content, "Acme Steel")
}

func TestRespondEmptyQuery(t *testing.T) {
	as := NewAssistant(WithGenerator(&fakeGenerator{}), WithMemory(&fakeMemory{}))

	_, err := as.Respond(context.Background(), "   ", nil)
	require.Error(t, err)
}

func TestRespondBoundsHistoryWindow(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}
	as := NewAssistant(WithGenerator(gen), WithMemory(&fakeMemory{}), WithWindow(2))

	var history []generator.Message
	for i := 0; i < 5; i++ {
		history = append(history, generator.Message{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	_, err := as.Respond(context.Background(), "current question", history)
	require.NoError(t, err)

	// system + 2 history turns + current query
	require.Len(t, gen.lastMessages, 4)
	assert.Equal(t, "turn 3", gen.lastMessages[1].Content)
	assert.Equal(t, "turn 4", gen.lastMessages[2].Content)
}

func TestRespondCustomRules(t *testing.T) {
	gen := &fakeGenerator{response: "ok"}

	rule := Rule{
		Name:  "vendor_lookup",
		Match: func(q string) bool { return true },
		Handle: func(ctx context.Context, q string) (string, error) {
			return "vendor scorecard attached", nil
		},
	}

	as := NewAssistant(WithGenerator(gen), WithMemory(&fakeMemory{}), WithRules(rule))

	_, err := as.Respond(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Contains(t, lastContent(gen), "[tool: vendor_lookup] vendor scorecard attached")
}
