// Package extractor turns raw document text into a structured field mapping
// by calling a generator in structured-output mode against a fixed schema.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/w-h-a/procurement/generator"
)

// FieldMapping is a key-value structure of extracted quote attributes.
// Fields the model could not read from the source text are present as nil.
type FieldMapping map[string]any

// ParseError reports that the model's raw output could not be parsed into
// the schema. Raw carries the unparsed response for manual recovery.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse structured data: %s", e.Reason)
}

type Extractor struct {
	generator generator.Generator
}

func New(g generator.Generator) *Extractor {
	return &Extractor{
		generator: g,
	}
}

// Extract makes exactly one model call and returns the parsed mapping with
// every schema field present (nil when absent from the model output). Retry
// policy belongs to the caller.
func (e *Extractor) Extract(ctx context.Context, text string) (FieldMapping, error) {
	prompt := buildPrompt(text)

	rsp, err := e.generator.Chat(
		ctx,
		[]generator.Message{{Role: "user", Content: prompt}},
		generator.WithStructuredOutput(),
	)
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	var mapping FieldMapping
	if err := json.Unmarshal([]byte(trimFence(rsp)), &mapping); err != nil {
		return nil, &ParseError{Reason: err.Error(), Raw: rsp}
	}

	for _, field := range QuoteSchema {
		if _, ok := mapping[field.Name]; !ok {
			mapping[field.Name] = nil
		}
	}

	return mapping, nil
}

// trimFence strips a markdown code fence when a provider wraps its JSON in
// one despite the structured-output instruction.
func trimFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
