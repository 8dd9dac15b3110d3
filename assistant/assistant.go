// Package assistant is the conversational surface. Tool context is gathered
// by an ordered list of (predicate, handler) rules evaluated against the
// normalized query; rule order is the only precedence mechanism.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/w-h-a/procurement/generator"
	"github.com/w-h-a/procurement/memorymanager"
)

const systemPrompt = `You are a procurement operations assistant. You analyze quotations, purchase orders, and invoices, track vendor history, and help compare bids.

RULES:
- Use **bold** for important values, names, and dates.
- Use tables for comparisons.
- If a lookup yields nothing, say so plainly; never invent records.
`

// Rule pairs a predicate over the normalized query with a handler that
// returns a context block for the prompt. Rules run in order; each match
// contributes its block.
type Rule struct {
	Name   string
	Match  func(query string) bool
	Handle func(ctx context.Context, query string) (string, error)
}

type Assistant struct {
	options Options
	rules   []Rule
}

// Respond gathers tool context from matching rules, then makes one chat
// call with the bounded history window, the query, and the gathered
// context. Rule failures are logged and skipped, never fatal.
func (a *Assistant) Respond(ctx context.Context, query string, history []generator.Message) (string, error) {
	if len(strings.TrimSpace(query)) == 0 {
		return "", fmt.Errorf("query is required")
	}

	normalized := strings.ToLower(strings.TrimSpace(query))

	var blocks []string
	for _, rule := range a.rules {
		if !rule.Match(normalized) {
			continue
		}
		block, err := rule.Handle(ctx, query)
		if err != nil {
			slog.WarnContext(ctx, "assistant rule failed", "rule", rule.Name, "error", err)
			continue
		}
		if len(block) > 0 {
			blocks = append(blocks, fmt.Sprintf("[tool: %s] %s", rule.Name, block))
		}
	}

	messages := []generator.Message{{Role: "system", Content: systemPrompt}}

	if len(history) > a.options.Window {
		history = history[len(history)-a.options.Window:]
	}
	messages = append(messages, history...)

	content := query
	if len(blocks) > 0 {
		content = fmt.Sprintf("%s\n\n%s", query, strings.Join(blocks, "\n\n"))
	}
	messages = append(messages, generator.Message{Role: "user", Content: content})

	return a.options.Generator.Chat(ctx, messages)
}

func matchAny(keywords ...string) func(string) bool {
	return func(query string) bool {
		for _, k := range keywords {
			if strings.Contains(query, k) {
				return true
			}
		}
		return false
	}
}

func defaultRules(memory memorymanager.MemoryManager) []Rule {
	return []Rule{
		{
			Name:  "memory_search",
			Match: matchAny("history", "previous", "last time", "remember", "past"),
			Handle: func(ctx context.Context, query string) (string, error) {
				results, err := memory.SearchHistory(ctx, query)
				if err != nil {
					return "", err
				}
				if len(results) == 0 {
					return "No matching historical records found in memory.", nil
				}
				return fmt.Sprintf("Historical data found:\n%s", strings.Join(results, "\n")), nil
			},
		},
		{
			Name:  "quote_listing",
			Match: matchAny("all quotes", "stored quotes", "list quotes", "recent quotes"),
			Handle: func(ctx context.Context, query string) (string, error) {
				quotes, err := memory.ListQuotes(ctx)
				if err != nil {
					return "", err
				}
				if len(quotes) == 0 {
					return "No quotes on record.", nil
				}
				var b strings.Builder
				for i, q := range quotes {
					if i >= 10 {
						break
					}
					b.WriteString(q.RawJSON)
					b.WriteString("\n")
				}
				return fmt.Sprintf("Stored quotes (newest first):\n%s", b.String()), nil
			},
		},
	}
}

func NewAssistant(opts ...Option) *Assistant {
	options := NewOptions(opts...)

	if options.Generator == nil || options.Memory == nil {
		panic("missing generator or memory manager for assistant")
	}

	a := &Assistant{
		options: options,
		rules:   options.Rules,
	}

	if len(a.rules) == 0 {
		a.rules = defaultRules(options.Memory)
	}

	return a
}
