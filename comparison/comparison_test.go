package comparison

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w-h-a/procurement/extractor"
	"github.com/w-h-a/procurement/generator"
)

type fakeGenerator struct {
	response string
	err      error

	lastPrompt string
}

func (g *fakeGenerator) Chat(ctx context.Context, messages []generator.Message, opts ...generator.ChatOption) (string, error) {
	g.lastPrompt = messages[len(messages)-1].Content
	return g.response, g.err
}

func (g *fakeGenerator) Reason(ctx context.Context, prompt string) (string, error) {
	return g.response, g.err
}

func TestCompareEmptyInput(t *testing.T) {
	engine := New(&fakeGenerator{})

	_, err := engine.Compare(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no quotes")
}

func TestComparePicksLowestTotal(t *testing.T) {
	gen := &fakeGenerator{response: "Vendor B offers the best landed cost. Recommendation: accept."}
	engine := New(gen)

	quotes := []extractor.FieldMapping{
		{"vendor_name": "A", "total": float64(1000), "currency": "USD"},
		{"vendor_name": "B", "total": float64(900), "currency": "USD"},
		{"vendor_name": "C", "total": float64(1100), "currency": "USD"},
	}

	result, err := engine.Compare(context.Background(), quotes)
	require.NoError(t, err)

	assert.Equal(t, "B", result.BestBid)
	assert.Equal(t, "Vendor B offers the best landed cost. Recommendation: accept.", result.Analysis)
	assert.Contains(t, gen.lastPrompt, `"vendor_name":"B"`)
}

func TestCompareTiesKeepFirst(t *testing.T) {
	engine := New(&fakeGenerator{response: "even"})

	quotes := []extractor.FieldMapping{
		{"vendor_name": "First", "total": float64(500)},
		{"vendor_name": "Second", "total": float64(500)},
	}

	result, err := engine.Compare(context.Background(), quotes)
	require.NoError(t, err)
	assert.Equal(t, "First", result.BestBid)
}

func TestCompareNoTotals(t *testing.T) {
	engine := New(&fakeGenerator{response: "insufficient data"})

	quotes := []extractor.FieldMapping{
		{"vendor_name": "A", "total": nil},
		{"vendor_name": "B"},
	}

	result, err := engine.Compare(context.Background(), quotes)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", result.BestBid)
}

func TestCompareColumnUnion(t *testing.T) {
	engine := New(&fakeGenerator{response: "ok"})

	quotes := []extractor.FieldMapping{
		{"vendor_name": "A", "total": float64(10)},
		{"vendor_name": "B", "delivery_weeks": float64(3)},
	}

	result, err := engine.Compare(context.Background(), quotes)
	require.NoError(t, err)
	assert.Equal(t, []string{"delivery_weeks", "total", "vendor_name"}, result.Columns)
}

func TestDetectRevision(t *testing.T) {
	gen := &fakeGenerator{response: "Total increased from 900 to 950."}
	engine := New(gen)

	oldQuote := extractor.FieldMapping{"vendor_name": "Acme Steel", "total": float64(900)}
	newQuote := extractor.FieldMapping{"vendor_name": "Acme Steel", "total": float64(950)}

	delta, err := engine.DetectRevision(context.Background(), oldQuote, newQuote)
	require.NoError(t, err)

	assert.Equal(t, "Total increased from 900 to 950.", delta)
	assert.Contains(t, gen.lastPrompt, "Acme Steel")
	assert.Contains(t, gen.lastPrompt, `"total":900`)
	assert.Contains(t, gen.lastPrompt, `"total":950`)
}
