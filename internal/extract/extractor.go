// Package extract implements the rule-based receipt field-extraction engine.
//
// The engine is a deterministic, total function over raw OCR text: every
// input, including empty or garbage text, yields a fully populated
// ReceiptFields. Each field is extracted by an ordered cascade of criteria;
// the first criterion that succeeds wins and later ones are never consulted.
package extract

import (
	"log/slog"

	"github.com/gastosbot/gastos-tracker/constants"
	"github.com/gastosbot/gastos-tracker/internal/common"
)

// Config carries the keyword lists and defaults consumed by the engine.
// A Config must be treated as immutable for the lifetime of an Extractor;
// reloading keywords means constructing a new Extractor.
type Config struct {
	Keywords        common.Keywords
	DefaultCurrency string
	Categories      []constants.CategoryKeywords
}

type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Keywords.Total) == 0 && len(cfg.Keywords.Vendor) == 0 && len(cfg.Keywords.Date) == 0 {
		cfg.Keywords = common.DefaultKeywords()
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = constants.DefaultCurrencySymbol
	}
	if cfg.Categories == nil {
		cfg.Categories = constants.DefaultCategoryTable()
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract runs the full cascade over one OCR text. It never fails: fields
// that cannot be detected come back as their documented defaults.
func (e *Extractor) Extract(text string) ReceiptFields {
	lines := Lines(text)

	amount := e.extractAmount(lines, text)
	currency := e.detectCurrency(text)
	vendor := e.extractVendor(lines)
	date := e.extractDate(lines, text)
	description := e.buildDescription(lines, vendor)
	category := e.classifyCategory(description, text)
	items := collectLineItems(lines)

	e.logger.Debug("extraction complete",
		"lines", len(lines),
		"amount_found", amount != nil,
		"currency", currency,
		"vendor", vendor,
		"date", date,
		"category", category,
		"items", len(items),
	)

	return ReceiptFields{
		TotalAmount:     amount,
		CurrencySymbol:  currency,
		Vendor:          vendor,
		TransactionDate: date,
		Description:     description,
		Category:        category,
		LineItems:       items,
	}
}
