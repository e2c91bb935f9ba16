// Package currency converts and formats reference-currency amounts for
// display in the active currency.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kamaro-labs/centime/internal/model"
)

// Merge overlays loaded settings on top of the defaults so a partially
// written settings document never leaves a hole: any missing rate, symbol,
// or active code falls back to the default value.
func Merge(loaded, defaults model.CurrencySettings) model.CurrencySettings {
	out := model.CurrencySettings{
		Active:  defaults.Active,
		Rates:   make(map[string]float64, len(defaults.Rates)),
		Symbols: make(map[string]string, len(defaults.Symbols)),
	}
	for code, rate := range defaults.Rates {
		out.Rates[code] = rate
	}
	for code, sym := range defaults.Symbols {
		out.Symbols[code] = sym
	}
	for code, rate := range loaded.Rates {
		out.Rates[code] = rate
	}
	for code, sym := range loaded.Symbols {
		out.Symbols[code] = sym
	}
	if loaded.Active != "" {
		if _, ok := out.Rates[loaded.Active]; ok {
			out.Active = loaded.Active
		}
	}
	return out
}

// Convert multiplies a reference-currency amount by the active currency's
// rate. Decimal arithmetic keeps repeated conversions from drifting.
func Convert(amount float64, settings model.CurrencySettings) float64 {
	rate, ok := settings.Rates[settings.Active]
	if !ok {
		rate = 1
	}
	out, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Float64()
	return out
}

// Format converts and renders an amount for display. The reference currency
// shows two decimals with a prefixed symbol ($12.34); every other currency
// rounds to a whole number with a trailing symbol (16045 FRw). The
// asymmetry is deliberate and matches the persisted settings' symbols.
func Format(amount float64, settings model.CurrencySettings) string {
	symbol, ok := settings.Symbols[settings.Active]
	if !ok {
		symbol = settings.Active
	}
	converted := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rateFor(settings)))
	if settings.Active == model.ReferenceCurrency {
		return fmt.Sprintf("%s%s", symbol, converted.StringFixed(2))
	}
	return fmt.Sprintf("%s %s", converted.Round(0).StringFixed(0), symbol)
}

func rateFor(settings model.CurrencySettings) float64 {
	if rate, ok := settings.Rates[settings.Active]; ok {
		return rate
	}
	return 1
}
