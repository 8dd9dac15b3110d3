package storer

// QuoteRecord is the persisted form of an extracted quotation. Nil pointer
// fields mean the value was absent from the source document; the extraction
// layer never fabricates them. RawJSON carries the full extracted mapping
// serialized verbatim.
type QuoteRecord struct {
	Id            int64    `json:"id"`
	VendorName    string   `json:"vendor_name"`
	Material      *string  `json:"material"`
	Qty           *float64 `json:"qty"`
	UnitPrice     *float64 `json:"unit_price"`
	Total         *float64 `json:"total"`
	Currency      *string  `json:"currency"`
	DeliveryWeeks *int64   `json:"delivery_weeks"`
	PaymentTerms  *string  `json:"payment_terms"`
	Date          *string  `json:"date"`
	Deviations    *string  `json:"deviations"`
	Validity      *string  `json:"validity"`
	FilePath      string   `json:"file_path"`
	RawJSON       string   `json:"raw_json"`
}

// VendorPerformance is a stable schema contract keyed by vendor name. The
// intake pipeline does not populate it; the store must still carry it.
type VendorPerformance struct {
	VendorName           string   `json:"vendor_name"`
	AvgDelayDays         *float64 `json:"avg_delay_days"`
	QualityScore         *float64 `json:"quality_score"`
	PriceCompetitiveness *float64 `json:"price_competitiveness"`
	LastInteraction      *string  `json:"last_interaction"`
}
