// Package currency renders decimal amounts in the single configured
// display currency.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter formats major-unit decimal amounts for display.
type Formatter struct {
	code string
	cur  *money.Currency
}

// NewFormatter builds a formatter for the given ISO 4217 code. Unknown
// codes fall back to go-money's default currency shape.
func NewFormatter(code string) *Formatter {
	// Constructing through money.New guarantees a non-nil currency.
	return &Formatter{code: code, cur: money.New(0, code).Currency()}
}

// Code returns the configured currency code.
func (f *Formatter) Code() string { return f.code }

// Format renders an amount given in major units, e.g. 61990.5 in USD
// becomes "$61,990.50".
func (f *Formatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(f.cur.Fraction)).Round(0).IntPart()
	return f.cur.Formatter().Format(minor)
}

// FormatSigned renders like Format but with an explicit leading sign,
// e.g. "+$864.86" or "-$12.40".
func (f *Formatter) FormatSigned(amount decimal.Decimal) string {
	if amount.Sign() < 0 {
		return "-" + f.Format(amount.Abs())
	}
	return "+" + f.Format(amount)
}
