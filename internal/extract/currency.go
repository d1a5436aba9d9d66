package extract

import (
	"strings"

	"github.com/gastosbot/gastos-tracker/constants"
)

// detectCurrency scans the entire raw text for currency symbols in fixed
// priority order. It is deliberately independent of the line that produced
// the amount: a receipt mixing symbols can report a currency that disagrees
// with the extracted total.
func (e *Extractor) detectCurrency(text string) string {
	for _, sym := range constants.CurrencySymbols {
		if strings.Contains(text, sym) {
			return sym
		}
		// OCR often lowercases the sol prefix
		if sym == constants.CurrencySol && strings.Contains(text, "s/.") {
			return sym
		}
	}
	return e.cfg.DefaultCurrency
}
