package classifier

import "strings"

type DocumentType string

const (
	Quotation     DocumentType = "Quotation"
	PurchaseOrder DocumentType = "Purchase Order"
	RFQ           DocumentType = "RFQ"
	Invoice       DocumentType = "Invoice"
	Unknown       DocumentType = "Unknown"
)

// markers are checked in order; the first category with a hit wins.
// A document mentioning both "quotation" and "invoice" is a Quotation.
var markers = []struct {
	docType DocumentType
	phrases []string
}{
	{Quotation, []string{"quotation", "quote", "proforma"}},
	{PurchaseOrder, []string{"purchase order", "po #"}},
	{RFQ, []string{"request for quotation", "rfq"}},
	{Invoice, []string{"invoice"}},
}

// Classify maps raw document text to a document type via case-insensitive
// keyword markers. It never fails: text with no markers is Unknown.
func Classify(text string) DocumentType {
	lower := strings.ToLower(text)

	for _, m := range markers {
		for _, phrase := range m.phrases {
			if strings.Contains(lower, phrase) {
				return m.docType
			}
		}
	}

	return Unknown
}
