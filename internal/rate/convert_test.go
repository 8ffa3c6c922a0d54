package rate

import (
	"testing"

	"storefx/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestToTargetAndBack(t *testing.T) {
	const rate = 43.6124

	require.InDelta(t, 4361.24, ToTarget(100, rate), 1e-9)
	require.InDelta(t, 100, ToBase(ToTarget(100, rate), rate), 1e-9)
	require.InDelta(t, 19.95, ToBase(ToTarget(19.95, rate), rate), 1e-9)
}

func TestLocaleFor(t *testing.T) {
	require.Equal(t, "tr-TR", LocaleFor("TRY"))
	require.Equal(t, "en-US", LocaleFor("USD"))
	require.Equal(t, "en-US", LocaleFor("EUR"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		locale   string
		want     string
	}{
		{"usd grouping and decimal point", 1234.5, "USD", "en-US", "$1,234.50"},
		{"try grouping and decimal comma", 1234.5, "TRY", "tr-TR", "₺1.234,50"},
		{"usd whole amount keeps two digits", 5, "USD", "en-US", "$5.00"},
		{"try small amount", 0.5, "TRY", "tr-TR", "₺0,50"},
		{"unknown currency uses code prefix", 10, "EUR", "en-US", "EUR 10.00"},
		{"bad locale falls back to english", 1234.5, "USD", "not-a-locale", "$1,234.50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Format(tc.amount, tc.currency, tc.locale))
		})
	}
}

func TestConvertAndFormat(t *testing.T) {
	pair := domain.CurrencyPair{Base: "USD", Target: "TRY"}
	const rate = 43.6124

	// Target currency converts then formats in the target locale.
	require.Equal(t, "₺4.361,24", ConvertAndFormat(100, pair, "TRY", rate))

	// Base currency (or anything unrecognized) skips conversion.
	require.Equal(t, "$100.00", ConvertAndFormat(100, pair, "USD", rate))
	require.Equal(t, "$100.00", ConvertAndFormat(100, pair, "", rate))
}
