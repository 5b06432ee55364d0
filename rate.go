package dash

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrZeroTimespan is returned when rates are requested over an empty window.
// A flow rate over zero elapsed time is undefined; callers must guard.
var ErrZeroTimespan = errors.New("dash: elapsed timespan is zero, rates are undefined")

// RatePeriod is the time unit the rates of a RateSet are expressed in.
type RatePeriod string

const (
	PerHour RatePeriod = "h"
	PerDay  RatePeriod = "day"
)

// FlowRate is the trading flow of one side over one period.
type FlowRate struct {
	Notional   decimal.Decimal
	OrderCount decimal.Decimal
	Fee        decimal.Decimal
}

func (f FlowRate) scale(factor decimal.Decimal) FlowRate {
	return FlowRate{
		Notional:   f.Notional.Mul(factor),
		OrderCount: f.OrderCount.Mul(factor),
		Fee:        f.Fee.Mul(factor),
	}
}

// RateSet carries the per-side flow rates plus their combined global entry.
type RateSet struct {
	Buy    FlowRate
	Sell   FlowRate
	Global FlowRate // Buy + Sell
}

// HourlyRates converts an aggregated trade window into per-hour flow rates.
// elapsed is the time since the first record of the window; it must be
// strictly positive or ErrZeroTimespan is returned.
func HourlyRates(s TradesSummary, elapsed time.Duration) (RateSet, error) {
	if elapsed <= 0 {
		return RateSet{}, ErrZeroTimespan
	}
	hours := decimal.NewFromFloat(elapsed.Hours())
	perHour := func(side SideSummary) FlowRate {
		return FlowRate{
			Notional:   side.Notional.Div(hours),
			OrderCount: decimal.NewFromInt(int64(side.Count)).Div(hours),
			Fee:        side.Fee.Div(hours),
		}
	}
	return RateSet{
		Buy:    perHour(s.Buy),
		Sell:   perHour(s.Sell),
		Global: perHour(s.Total),
	}, nil
}

var twentyFour = decimal.NewFromInt(24)

// NormalizeRates rescales hourly rates to a human-meaningful period. When the
// global hourly notional is below a tenth of the equity the portfolio turns
// over slowly and the hourly figures are sub-noise, so every rate is
// multiplied by 24 and reported per day; otherwise they are kept per hour.
func NormalizeRates(r RateSet, equity decimal.Decimal) (RateSet, RatePeriod) {
	threshold := equity.Div(decimal.NewFromInt(10))
	if r.Global.Notional.LessThan(threshold) {
		return RateSet{
			Buy:    r.Buy.scale(twentyFour),
			Sell:   r.Sell.scale(twentyFour),
			Global: r.Global.scale(twentyFour),
		}, PerDay
	}
	return r, PerHour
}
