package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamaro-labs/centime/internal/model"
)

func TestMerge(t *testing.T) {
	defaults := model.DefaultCurrencySettings()

	t.Run("empty loaded falls back to defaults", func(t *testing.T) {
		got := Merge(model.CurrencySettings{}, defaults)
		assert.Equal(t, defaults, got)
	})

	t.Run("loaded rates win over defaults", func(t *testing.T) {
		loaded := model.CurrencySettings{
			Active: "RWF",
			Rates:  map[string]float64{"RWF": 1450},
		}
		got := Merge(loaded, defaults)
		assert.Equal(t, "RWF", got.Active)
		assert.Equal(t, 1450.0, got.Rates["RWF"])
		// Untouched entries remain from the defaults.
		assert.Equal(t, 600.0, got.Rates["XOF"])
		assert.Equal(t, "FRw", got.Symbols["RWF"])
	})

	t.Run("active without a rate is rejected", func(t *testing.T) {
		loaded := model.CurrencySettings{Active: "EUR"}
		got := Merge(loaded, defaults)
		assert.Equal(t, model.ReferenceCurrency, got.Active)
	})

	t.Run("merge never aliases the defaults' maps", func(t *testing.T) {
		got := Merge(model.CurrencySettings{}, defaults)
		got.Rates["USD"] = 99
		assert.Equal(t, 1.0, defaults.Rates["USD"])
	})
}

func TestConvert(t *testing.T) {
	settings := model.DefaultCurrencySettings()

	assert.Equal(t, 12.34, Convert(12.34, settings))

	settings.Active = "RWF"
	assert.Equal(t, 16042.0, Convert(12.34, settings))

	settings.Active = "ZZZ"
	assert.Equal(t, 12.34, Convert(12.34, settings))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		active string
		want   string
	}{
		{name: "reference currency keeps cents and a prefix", amount: 12.34, active: "USD", want: "$12.34"},
		{name: "reference currency pads to two decimals", amount: 5, active: "USD", want: "$5.00"},
		{name: "rwf rounds to whole francs with a trailing symbol", amount: 12.34, active: "RWF", want: "16042 FRw"},
		{name: "xof", amount: 10, active: "XOF", want: "6000 CFA"},
		{name: "rwf rounds half up", amount: 0.5001, active: "RWF", want: "650 FRw"},
		{name: "zero", amount: 0, active: "USD", want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := model.DefaultCurrencySettings()
			settings.Active = tt.active
			assert.Equal(t, tt.want, Format(tt.amount, settings))
		})
	}
}

func TestFormatUnknownCurrencyUsesCodeAsSymbol(t *testing.T) {
	settings := model.DefaultCurrencySettings()
	settings.Active = "EUR"
	// No rate and no symbol registered: rate falls back to 1 and the code
	// itself stands in for the symbol.
	assert.Equal(t, "10 EUR", Format(10.4, settings))
}
