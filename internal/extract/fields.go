package extract

// ReceiptFields is the structured result of running the extraction engine
// over one OCR text. It is built once per text and not mutated afterwards.
type ReceiptFields struct {
	// TotalAmount is nil when no criterion produced a positive amount.
	// A found amount is always > 0; absence is never encoded as zero.
	TotalAmount *float64 `json:"total_amount,omitempty"`

	// CurrencySymbol is one of the closed symbol set, or the configured
	// default when no symbol appears in the text.
	CurrencySymbol string `json:"currency_symbol"`

	// Vendor is the detected merchant line, or DefaultVendor.
	Vendor string `json:"vendor"`

	// TransactionDate is the raw matched substring, format-preserving.
	// Empty means no date was detected; it never defaults to today.
	TransactionDate string `json:"transaction_date,omitempty"`

	// Description is never empty.
	Description string `json:"description"`

	// Category is always one of the closed category set.
	Category string `json:"category"`

	// LineItems are the raw lines that look like priced items, in source
	// order, possibly empty.
	LineItems []string `json:"line_items"`
}

// DefaultVendor is the placeholder merchant name when detection fails.
const DefaultVendor = "Comercio"
