// Package comparison produces tabular and narrative comparisons of
// already-extracted quote records.
package comparison

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/w-h-a/procurement/extractor"
	"github.com/w-h-a/procurement/generator"
	getsafe "github.com/w-h-a/procurement/util/get_safe"
)

type Result struct {
	Columns  []string                 `json:"columns"`
	Table    []extractor.FieldMapping `json:"table"`
	Analysis string                   `json:"analysis"`
	BestBid  string                   `json:"best_bid"`
}

type Engine struct {
	generator generator.Generator
}

func New(g generator.Generator) *Engine {
	return &Engine{
		generator: g,
	}
}

// Compare builds a tabular projection over the union of observed fields,
// picks the minimum-total bid deterministically, and asks the model for a
// qualitative comparison.
func (e *Engine) Compare(ctx context.Context, quotes []extractor.FieldMapping) (*Result, error) {
	if len(quotes) == 0 {
		return nil, errors.New("no quotes provided for comparison")
	}

	result := &Result{
		Columns: columnUnion(quotes),
		Table:   quotes,
		BestBid: bestBid(quotes),
	}

	data, err := json.Marshal(quotes)
	if err != nil {
		return nil, fmt.Errorf("marshal quotes: %w", err)
	}

	prompt := fmt.Sprintf(`Compare these vendor quotations for procurement.
Highlight:
1. Best price (normalized)
2. Delivery time differences
3. Payment term risks
4. Technical deviations / missing info

Data:
%s

Return a structured comparison summary with a 'recommendation'.
`, string(data))

	analysis, err := e.generator.Chat(ctx, []generator.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, fmt.Errorf("comparison analysis: %w", err)
	}

	result.Analysis = analysis

	return result, nil
}

// DetectRevision identifies only the deltas between two quotes from the
// same vendor. The output is narrative text, not a structured diff.
func (e *Engine) DetectRevision(ctx context.Context, oldQuote, newQuote extractor.FieldMapping) (string, error) {
	oldData, err := json.Marshal(oldQuote)
	if err != nil {
		return "", fmt.Errorf("marshal old quote: %w", err)
	}
	newData, err := json.Marshal(newQuote)
	if err != nil {
		return "", fmt.Errorf("marshal new quote: %w", err)
	}

	prompt := fmt.Sprintf(`Compare these two versions of a quotation from %s.
Identify ONLY what has changed (price, delivery, terms).

Old: %s
New: %s
`, getsafe.String(oldQuote, "vendor_name"), string(oldData), string(newData))

	return e.generator.Chat(ctx, []generator.Message{{Role: "user", Content: prompt}})
}

func columnUnion(quotes []extractor.FieldMapping) []string {
	seen := map[string]struct{}{}
	var columns []string

	for _, quote := range quotes {
		for key := range quote {
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			columns = append(columns, key)
		}
	}

	sort.Strings(columns)

	return columns
}

// bestBid returns the vendor of the record with the lowest numeric total,
// keeping the first on ties, or "Unknown" when no record has one.
func bestBid(quotes []extractor.FieldMapping) string {
	best := "Unknown"
	var min float64
	found := false

	for _, quote := range quotes {
		total, ok := getsafe.Float(quote, "total")
		if !ok {
			continue
		}
		if !found || total < min {
			min = total
			found = true
			if vendor := getsafe.String(quote, "vendor_name"); len(vendor) > 0 {
				best = vendor
			} else {
				best = "Unknown"
			}
		}
	}

	return best
}
