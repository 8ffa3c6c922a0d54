package rate

import (
	"storefx/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Conversion helpers are pure and independent of the store/service layers.
// A rate is always "target units per one base unit".

func ToTarget(amountInBase, rate float64) float64 {
	return amountInBase * rate
}

func ToBase(amountInTarget, rate float64) float64 {
	return amountInTarget / rate
}

var currencySymbols = map[string]string{
	"USD": "$",
	"TRY": "₺",
}

// LocaleFor returns the display locale the storefront uses for a currency.
func LocaleFor(currency string) string {
	if currency == "TRY" {
		return "tr-TR"
	}
	return "en-US"
}

// Format renders amount with the currency symbol and locale-aware separators,
// always with exactly two fraction digits.
func Format(amount float64, currency string, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	printer := message.NewPrinter(tag)

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}
	return symbol + printer.Sprintf("%v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// ConvertAndFormat converts a base-currency price into the selected display
// currency and formats it. Selecting the base currency skips conversion.
func ConvertAndFormat(amountInBase float64, pair domain.CurrencyPair, display string, rate float64) string {
	if display != pair.Target {
		return Format(amountInBase, pair.Base, LocaleFor(pair.Base))
	}
	return Format(ToTarget(amountInBase, rate), pair.Target, LocaleFor(pair.Target))
}
