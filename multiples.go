package dash

import "github.com/shopspring/decimal"

// CapitalSnapshot is the ledger view of the account's capital, treated as
// ground truth for the multiples below.
type CapitalSnapshot struct {
	Equity        decimal.Decimal
	PaidInCapital decimal.Decimal
	Distributions decimal.Decimal
}

// NetInvestment is the capital still committed: paid-in minus distributions.
func (c CapitalSnapshot) NetInvestment() decimal.Decimal {
	return c.PaidInCapital.Sub(c.Distributions)
}

// Multiples holds the derived performance figures. Ratios whose denominator
// is zero or negative are left invalid rather than forced to a number; the
// renderer shows them as the sentinel.
type Multiples struct {
	AssetsCurrentValue decimal.Decimal // mark-to-market of still-held positions
	NetInvestment      decimal.Decimal
	GrossEarnings      decimal.Decimal // before fees
	NetEarnings        decimal.Decimal // after fees

	GrossROIOnCost  decimal.NullDecimal
	NetROIOnCost    decimal.NullDecimal
	GrossROIOnValue decimal.NullDecimal
	NetROIOnValue   decimal.NullDecimal

	RVPI decimal.NullDecimal // Residual Value to Paid-In
	DPI  decimal.NullDecimal // Distributions to Paid-In
	TVPI decimal.NullDecimal // DPI + RVPI, only when both are defined
}

// MOIC (Multiple on Invested Capital) is a synonym of TVPI.
func (m Multiples) MOIC() decimal.NullDecimal { return m.TVPI }

// ratio divides num by den, but only when den is strictly positive. A ratio
// over zero or negative invested capital is meaningless, not infinite.
func ratio(num, den decimal.Decimal) decimal.NullDecimal {
	if !den.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: num.Div(den), Valid: true}
}

// ComputeMultiples derives earnings, ROI and the paid-in multiples from a
// capital snapshot and the aggregated trade figures. buyCurrentValue and
// sellCurrentValue are the mark-to-market values of all bought and all sold
// amounts; fees is the total paid fees over the same window.
func ComputeMultiples(c CapitalSnapshot, buyCurrentValue, sellCurrentValue, fees decimal.Decimal) Multiples {
	m := Multiples{
		AssetsCurrentValue: buyCurrentValue.Sub(sellCurrentValue),
		NetInvestment:      c.NetInvestment(),
	}
	m.GrossEarnings = c.Equity.Sub(m.NetInvestment)
	m.NetEarnings = m.GrossEarnings.Sub(fees)

	m.GrossROIOnCost = ratio(m.GrossEarnings, m.NetInvestment)
	m.NetROIOnCost = ratio(m.NetEarnings, m.NetInvestment)
	m.GrossROIOnValue = ratio(m.GrossEarnings, c.Equity)
	m.NetROIOnValue = ratio(m.NetEarnings, c.Equity)

	m.RVPI = ratio(c.Equity, c.PaidInCapital)
	m.DPI = ratio(c.Distributions, c.PaidInCapital)
	// Never substitute zero for a missing term: TVPI is defined only when
	// both components are.
	if m.RVPI.Valid && m.DPI.Valid {
		m.TVPI = decimal.NullDecimal{Decimal: m.DPI.Decimal.Add(m.RVPI.Decimal), Valid: true}
	}
	return m
}
