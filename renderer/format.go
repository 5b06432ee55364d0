// Package renderer turns the analytics core's figures into display text:
// adaptive-precision numbers, markdown reports and colorized order rows.
package renderer

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Sentinel is displayed in place of null, unknown or exactly-zero values.
const Sentinel = "--"

// Warning prefixes figures computed from incomplete or diverging data.
const Warning = "⚠️"

// grouping renders minor units (hundredths) with thousands separators,
// e.g. 123466 -> "1,234.66".
var grouping = money.NewFormatter(2, ".", ",", "", "1")

var one = decimal.New(1, 0)

// Value formats a nullable decimal with adaptive precision:
//
//   - invalid or exactly zero: the sentinel "--".
//   - |v| ≥ 1: thousands separators and exactly 2 decimal places.
//   - 0 < |v| < 1: the first 2 significant decimal digits are kept, i.e.
//     decimals = 2 − floor(log10|v|) − 1, so 0.06565 renders as "0.066".
//
// The sign is applied after magnitude formatting and unit, when non-empty,
// is appended as a literal suffix.
func Value(v decimal.NullDecimal, unit string) string {
	if !v.Valid || v.Decimal.IsZero() {
		return Sentinel
	}
	abs := v.Decimal.Abs()

	var s string
	if abs.GreaterThanOrEqual(one) {
		minor := abs.Shift(2).Round(0)
		if minor.BigInt().IsInt64() {
			s = grouping.Format(minor.IntPart())
		} else {
			// grouping only fits int64 minor units
			s = abs.StringFixed(2)
		}
	} else {
		// exponent of the leading significant digit, derived by exact
		// decimal shifting rather than float log10
		exp := 0
		for x := abs; x.LessThan(one); x = x.Shift(1) {
			exp--
		}
		decimals := int32(2 - exp - 1)
		s = abs.Round(decimals).StringFixed(decimals)
	}

	if v.Decimal.IsNegative() {
		s = "-" + s
	}
	if unit != "" {
		s += " " + unit
	}
	return s
}

// Decimal formats a known-present decimal. Zero still renders as the
// sentinel.
func Decimal(v decimal.Decimal, unit string) string {
	return Value(decimal.NullDecimal{Decimal: v, Valid: true}, unit)
}

// Float formats a float64, mapping NaN and infinities to the sentinel.
func Float(f float64, unit string) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Sentinel
	}
	return Decimal(decimal.NewFromFloat(f), unit)
}

var two = decimal.New(2, 0)

// Percent formats a ratio for display. Below 2 it reads naturally as a
// percentage; from 2 up it is shown as a multiple ("2.35×") to avoid
// three-digit percentages.
func Percent(v decimal.NullDecimal) string {
	if !v.Valid {
		return Sentinel
	}
	if v.Decimal.Abs().GreaterThanOrEqual(two) {
		return v.Decimal.StringFixed(2) + "×"
	}
	return v.Decimal.Mul(decimal.New(100, 0)).StringFixed(2) + "%"
}

// Flagged prepends the warning marker when flagged is true.
func Flagged(s string, flagged bool) string {
	if flagged {
		return Warning + " " + s
	}
	return s
}
