package arbfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// usd returns the US dollar currency.
func usd() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.USD).Currency()
}

// FormatUSD returns a display string of an amount of US dollars, rounded to
// the cent, e.g. "$1,234.50".
func FormatUSD(d decimal.Decimal) string {
	cur := usd()
	cents := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(cents.IntPart())
}

// FormatSignedUSD is like FormatUSD with an explicit sign. Zero is rendered as "-".
func FormatSignedUSD(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + FormatUSD(d)
	}
	return FormatUSD(d)
}
