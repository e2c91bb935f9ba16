package model

// ReferenceCurrency is the currency in which all record amounts are stored.
const ReferenceCurrency = "USD"

// CurrencySettings holds the active display currency plus the conversion
// rates and symbols for every supported currency. Rates are multipliers
// relative to the reference currency.
type CurrencySettings struct {
	Active  string             `json:"active"`
	Rates   map[string]float64 `json:"rates"`
	Symbols map[string]string  `json:"symbols"`
}

// DefaultCurrencySettings returns the built-in currency table. Loaded
// settings are merged over these so a partially written document never
// leaves a currency without a rate or symbol.
func DefaultCurrencySettings() CurrencySettings {
	return CurrencySettings{
		Active: ReferenceCurrency,
		Rates: map[string]float64{
			"USD": 1,
			"RWF": 1300,
			"XOF": 600,
		},
		Symbols: map[string]string{
			"USD": "$",
			"RWF": "FRw",
			"XOF": "CFA",
		},
	}
}

// SupportedCurrencies lists the codes the settings page may activate, in
// display order.
func SupportedCurrencies() []string {
	return []string{"USD", "RWF", "XOF"}
}
