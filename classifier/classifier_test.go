package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected DocumentType
	}{
		{"quotation marker", "QUOTATION #1123 from Acme Steel", Quotation},
		{"quote marker", "Please find our quote attached", Quotation},
		{"proforma marker", "Proforma for your review", Quotation},
		{"purchase order marker", "PURCHASE ORDER 88-1002", PurchaseOrder},
		{"po number marker", "Ref PO # 5521", PurchaseOrder},
		{"rfq marker", "RFQ 2291 for steel pipes", RFQ},
		{"invoice marker", "Invoice No. 2024-117, due in 30 days", Invoice},
		{"no marker", "Meeting notes from Tuesday", Unknown},
		{"empty text", "", Unknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.text))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// quotation markers beat every later category
	assert.Equal(t, Quotation, Classify("This quotation supersedes invoice 2024-117"))
	assert.Equal(t, Quotation, Classify("quote attached to purchase order 12"))

	// purchase order beats invoice
	assert.Equal(t, PurchaseOrder, Classify("purchase order referencing invoice 9"))

	// rfq beats invoice
	assert.Equal(t, RFQ, Classify("rfq response with invoice terms"))
}

func TestClassifyDeterministic(t *testing.T) {
	text := "Quotation and invoice and purchase order all mentioned"
	first := Classify(text)
	for range 10 {
		assert.Equal(t, first, Classify(text))
	}
}
