// Package procurement wires document intake, classification, extraction,
// and the memory layer into a single processing pipeline.
package procurement

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/w-h-a/procurement/classifier"
	"github.com/w-h-a/procurement/extractor"
	"github.com/w-h-a/procurement/generator"
	"github.com/w-h-a/procurement/memorymanager/providers/storer"
	"github.com/w-h-a/procurement/reader"
	getsafe "github.com/w-h-a/procurement/util/get_safe"
)

const (
	// TypeError marks a result for a document that could not be processed
	// at all (unreadable or effectively empty).
	TypeError = "Error"

	// minContentLength is the minimum number of non-whitespace characters
	// a document must carry before any downstream step sees it.
	minContentLength = 10

	// narrativePrefixLimit bounds how much raw text a narrative summary
	// call receives.
	narrativePrefixLimit = 3000

	// historySnippetLimit caps the prior-quote snippets included in the
	// quotation summary prompt.
	historySnippetLimit = 2
)

// Result is the outcome of processing one document.
type Result struct {
	Type          string                 `json:"type"`
	Data          extractor.FieldMapping `json:"data"`
	Summary       string                 `json:"summary"`
	NeedsApproval bool                   `json:"needs_approval"`
}

type Agent struct {
	options   Options
	extractor *extractor.Extractor
}

// ProcessDocument runs the full intake pipeline for one file: read,
// classify, extract or narrate, consult history, persist, summarize. It
// never panics past its boundary; internal faults come back as an
// Error-typed result.
func (a *Agent) ProcessDocument(ctx context.Context, path string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "document processing fault", "path", path, "fault", r)
			result = Result{Type: TypeError, Data: extractor.FieldMapping{}, Summary: fmt.Sprintf("internal fault: %v", r)}
		}
	}()

	slog.InfoContext(ctx, "processing document", "path", path)

	text, err := a.options.Reader.Read(path)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read document", "path", path, "error", err)
		return Result{Type: TypeError, Data: extractor.FieldMapping{}, Summary: fmt.Sprintf("Could not read file: %v", err)}
	}

	if text == reader.Unsupported || nonWhitespaceLen(text) < minContentLength {
		return Result{Type: TypeError, Data: extractor.FieldMapping{}, Summary: "File appears to be empty or unreadable."}
	}

	docType := classifier.Classify(text)
	slog.InfoContext(ctx, "classified document", "path", path, "type", docType)

	switch docType {
	case classifier.Quotation:
		return a.processQuotation(ctx, path, text)
	case classifier.PurchaseOrder:
		return a.narrate(ctx, docType, text,
			"Summarize this Purchase Order in clean bullet points. Highlight: PO number, vendor, items ordered, total value, delivery date.")
	case classifier.Invoice:
		return a.narrate(ctx, docType, text,
			"Summarize this Invoice. Highlight: invoice number, vendor, amount, due date, payment status.")
	default:
		return a.narrate(ctx, docType, text,
			fmt.Sprintf("This is a '%s' document. Provide a concise summary of its contents:", docType))
	}
}

func (a *Agent) processQuotation(ctx context.Context, path string, text string) Result {
	mapping, err := a.extractor.Extract(ctx, text)
	if err != nil {
		// partial failure: the document is a quotation but its fields are
		// unusable; the caller still gets a typed result
		slog.WarnContext(ctx, "quotation extraction failed", "path", path, "error", err)
		return Result{
			Type:    string(classifier.Quotation),
			Data:    extractor.FieldMapping{},
			Summary: fmt.Sprintf("Extraction issue: %v", err),
		}
	}

	mapping["file_path"] = path

	vendor := getsafe.String(mapping, "vendor_name")
	if len(vendor) == 0 {
		vendor = "Unknown"
	}
	material := getsafe.String(mapping, "material")
	if len(material) == 0 {
		material = "Unknown"
	}

	var history []string
	if found, err := a.options.Memory.SearchHistory(ctx, fmt.Sprintf("quotes from %s for %s", vendor, material)); err != nil {
		slog.WarnContext(ctx, "history lookup failed, continuing without context", "vendor", vendor, "error", err)
	} else {
		history = found
	}

	if _, err := a.options.Memory.StoreQuote(ctx, RecordFromMapping(mapping, path)); err != nil {
		slog.ErrorContext(ctx, "memory store error", "path", path, "error", err)
	}

	summary, err := a.options.Generator.Chat(ctx, []generator.Message{
		{Role: "user", Content: quotationSummaryPrompt(mapping, vendor, material, history)},
	})
	if err != nil {
		summary = fmt.Sprintf("Summary unavailable: %v", err)
	}

	return Result{
		Type:          string(classifier.Quotation),
		Data:          mapping,
		Summary:       summary,
		NeedsApproval: false,
	}
}

func (a *Agent) narrate(ctx context.Context, docType classifier.DocumentType, text string, instruction string) Result {
	prefix := text
	if len(prefix) > narrativePrefixLimit {
		// back off to a rune boundary so the model never sees invalid utf-8
		cut := narrativePrefixLimit
		for cut > 0 && !utf8.RuneStart(prefix[cut]) {
			cut--
		}
		prefix = prefix[:cut]
	}

	summary, err := a.options.Generator.Chat(ctx, []generator.Message{
		{Role: "user", Content: fmt.Sprintf("%s\n\n%s", instruction, prefix)},
	})
	if err != nil {
		summary = fmt.Sprintf("Summary unavailable: %v", err)
	}

	return Result{
		Type:    string(docType),
		Data:    extractor.FieldMapping{},
		Summary: summary,
	}
}

func quotationSummaryPrompt(mapping extractor.FieldMapping, vendor string, material string, history []string) string {
	if len(history) > historySnippetLimit {
		history = history[:historySnippetLimit]
	}

	historical := "No prior quotes on record."
	if len(history) > 0 {
		data, err := json.Marshal(history)
		if err == nil {
			historical = string(data)
		}
	}

	total := "N/A"
	if v, ok := getsafe.Float(mapping, "total"); ok {
		total = fmt.Sprintf("%v", v)
	}
	delivery := "N/A"
	if v, ok := getsafe.Int(mapping, "delivery_weeks"); ok {
		delivery = fmt.Sprintf("%d", v)
	}
	terms := getsafe.String(mapping, "payment_terms")
	if len(terms) == 0 {
		terms = "N/A"
	}
	validity := getsafe.String(mapping, "validity")
	if len(validity) == 0 {
		validity = "N/A"
	}

	return fmt.Sprintf(`Summarize this procurement quotation in 3-4 bullet points:

**Vendor:** %s
**Material:** %s
**Total:** %s %s
**Delivery:** %s weeks
**Payment Terms:** %s
**Validity:** %s

Historical context: %s

End with a recommendation (accept / negotiate / compare with alternatives).
`, vendor, material, getsafe.String(mapping, "currency"), total, delivery, terms, validity, historical)
}

// RecordFromMapping converts an extracted field mapping to its persisted
// form. Absent or non-conforming values stay nil; the raw mapping is
// serialized verbatim into RawJSON.
func RecordFromMapping(mapping extractor.FieldMapping, path string) storer.QuoteRecord {
	raw, err := json.Marshal(mapping)
	if err != nil {
		raw = []byte("{}")
	}

	rec := storer.QuoteRecord{
		VendorName: getsafe.String(mapping, "vendor_name"),
		FilePath:   path,
		RawJSON:    string(raw),
	}
	if len(rec.VendorName) == 0 {
		rec.VendorName = "Unknown"
	}

	if s := getsafe.String(mapping, "material"); len(s) > 0 {
		rec.Material = &s
	}
	if f, ok := getsafe.Float(mapping, "qty"); ok {
		rec.Qty = &f
	}
	if f, ok := getsafe.Float(mapping, "unit_price"); ok {
		rec.UnitPrice = &f
	}
	if f, ok := getsafe.Float(mapping, "total"); ok {
		rec.Total = &f
	}
	if s := getsafe.String(mapping, "currency"); len(s) > 0 {
		rec.Currency = &s
	}
	if n, ok := getsafe.Int(mapping, "delivery_weeks"); ok {
		rec.DeliveryWeeks = &n
	}
	if s := getsafe.String(mapping, "payment_terms"); len(s) > 0 {
		rec.PaymentTerms = &s
	}
	if s := getsafe.String(mapping, "date"); len(s) > 0 {
		rec.Date = &s
	}
	if s := getsafe.String(mapping, "deviations"); len(s) > 0 {
		rec.Deviations = &s
	}
	if s := getsafe.String(mapping, "validity"); len(s) > 0 {
		rec.Validity = &s
	}

	return rec
}

func nonWhitespaceLen(s string) int {
	count := 0
	for _, r := range s {
		if !strings.ContainsRune(" \t\n\r\v\f", r) {
			count++
		}
	}
	return count
}

func New(opts ...Option) *Agent {
	options := NewOptions(opts...)

	if options.Reader == nil || options.Generator == nil || options.Memory == nil {
		panic("missing reader, generator, or memory manager for agent")
	}

	a := &Agent{
		options:   options,
		extractor: extractor.New(options.Generator),
	}

	return a
}
