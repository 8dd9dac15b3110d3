package extractor

import (
	"fmt"
	"strings"
)

type Field struct {
	Name string
	Spec string
}

// QuoteSchema is the fixed extraction schema for quotation documents.
var QuoteSchema = []Field{
	{"vendor_name", "string"},
	{"material", "string or null"},
	{"qty", "number or null"},
	{"unit_price", "number or null"},
	{"total", "number or null"},
	{"currency", "string (e.g. USD, EUR, INR)"},
	{"delivery_weeks", "number or null"},
	{"payment_terms", "string or null"},
	{"date", "string (YYYY-MM-DD) or null"},
	{"deviations", "string or null"},
	{"validity", "string or null"},
}

func buildPrompt(text string) string {
	var schema strings.Builder
	schema.WriteString("{\n")
	for i, field := range QuoteSchema {
		schema.WriteString(fmt.Sprintf("  %q: %q", field.Name, field.Spec))
		if i < len(QuoteSchema)-1 {
			schema.WriteString(",")
		}
		schema.WriteString("\n")
	}
	schema.WriteString("}")

	return fmt.Sprintf(`Extract structured information from the following document text.

Schema (return ONLY these fields as valid JSON):
%s

RULES:
- If a field is not found in the text, set it to null.
- Do NOT hallucinate values. Only extract what is explicitly stated.
- For prices, extract numeric values only (no currency symbols in number fields).
- For dates, use YYYY-MM-DD format.

Document Text:
%s
`, schema.String(), text)
}
