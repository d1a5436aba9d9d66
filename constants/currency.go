package constants

// Currency symbols recognized on receipts, in detection priority order.
const (
	CurrencySol    = "S/."
	CurrencyDollar = "$"
	CurrencyEuro   = "€"
	CurrencyPound  = "£"
)

// DefaultCurrencySymbol is used when no symbol appears anywhere in the text.
// The deployment targets Peruvian receipts, so the Sol is the default.
const DefaultCurrencySymbol = CurrencySol

// CurrencySymbols lists the closed symbol set in detection priority order.
var CurrencySymbols = []string{CurrencySol, CurrencyDollar, CurrencyEuro, CurrencyPound}
