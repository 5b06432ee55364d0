package dash

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the direction of an executed trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide parses a side string, accepting any casing.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	}
	return "", fmt.Errorf("unknown trade side %q", s)
}

// TradeRecord is one executed trade (or fill) as delivered by the back-end.
// It is immutable; the aggregator only ever reads it.
type TradeRecord struct {
	Side     Side
	Notional decimal.Decimal // cash value at execution (price × amount)
	Fee      decimal.Decimal
	Amount   decimal.Decimal
	// CurrentValue is the mark-to-market value of Amount. It is invalid when
	// no price could be resolved for the traded asset.
	CurrentValue decimal.NullDecimal
}

// SideSummary accumulates the trades of one side. The TOTAL summary is the
// field-wise sum of both sides, except AmountValueIncomplete which is ORed.
type SideSummary struct {
	Count       int
	Notional    decimal.Decimal
	Fee         decimal.Decimal
	AmountValue decimal.Decimal
	// AmountValueIncomplete reports that at least one trade on this side had
	// no resolvable mark-to-market price, so AmountValue understates reality.
	AmountValueIncomplete bool
}

func (s SideSummary) add(t TradeRecord) SideSummary {
	s.Count++
	s.Notional = s.Notional.Add(t.Notional)
	s.Fee = s.Fee.Add(t.Fee)
	if t.CurrentValue.Valid {
		s.AmountValue = s.AmountValue.Add(t.CurrentValue.Decimal)
	} else {
		s.AmountValueIncomplete = true
	}
	return s
}

// TradesSummary holds the per-side summaries and their total. Both sides are
// always present, even when no trade matched them.
type TradesSummary struct {
	Buy   SideSummary
	Sell  SideSummary
	Total SideSummary
}

// Side returns the summary for the given side.
func (s TradesSummary) Side(side Side) SideSummary {
	if side == Sell {
		return s.Sell
	}
	return s.Buy
}

// Aggregate partitions trades by side and sums count, notional, fee and
// mark-to-market value. Grouping is commutative, so the result does not
// depend on the input order.
func Aggregate(trades []TradeRecord) TradesSummary {
	var s TradesSummary
	for _, t := range trades {
		switch t.Side {
		case Buy:
			s.Buy = s.Buy.add(t)
		case Sell:
			s.Sell = s.Sell.add(t)
		}
	}
	s.Total = SideSummary{
		Count:                 s.Buy.Count + s.Sell.Count,
		Notional:              s.Buy.Notional.Add(s.Sell.Notional),
		Fee:                   s.Buy.Fee.Add(s.Sell.Fee),
		AmountValue:           s.Buy.AmountValue.Add(s.Sell.AmountValue),
		AmountValueIncomplete: s.Buy.AmountValueIncomplete || s.Sell.AmountValueIncomplete,
	}
	return s
}
