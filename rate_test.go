package dash

import (
	"errors"
	"testing"
	"time"
)

func TestHourlyRates(t *testing.T) {
	s := TradesSummary{
		Buy:   SideSummary{Count: 4, Notional: d("40"), Fee: d("0.4")},
		Sell:  SideSummary{Count: 2, Notional: d("8"), Fee: d("0.2")},
		Total: SideSummary{Count: 6, Notional: d("48"), Fee: d("0.6")},
	}

	r, err := HourlyRates(s, 2*time.Hour)
	if err != nil {
		t.Fatalf("HourlyRates() error = %v", err)
	}
	if !r.Buy.Notional.Equal(d("20")) {
		t.Errorf("Buy.Notional = %s, want 20 per hour", r.Buy.Notional)
	}
	if !r.Buy.OrderCount.Equal(d("2")) {
		t.Errorf("Buy.OrderCount = %s, want 2 per hour", r.Buy.OrderCount)
	}
	if !r.Global.Notional.Equal(d("24")) {
		t.Errorf("Global.Notional = %s, want 24 per hour", r.Global.Notional)
	}
	if !r.Global.Fee.Equal(d("0.3")) {
		t.Errorf("Global.Fee = %s, want 0.3 per hour", r.Global.Fee)
	}
}

func TestHourlyRates_ZeroTimespan(t *testing.T) {
	for _, elapsed := range []time.Duration{0, -time.Minute} {
		_, err := HourlyRates(TradesSummary{}, elapsed)
		if !errors.Is(err, ErrZeroTimespan) {
			t.Errorf("HourlyRates(elapsed=%v) error = %v, want ErrZeroTimespan", elapsed, err)
		}
	}
}

func TestNormalizeRates(t *testing.T) {
	tests := []struct {
		name       string
		hourly     string // global hourly notional
		equity     string
		wantPeriod RatePeriod
		wantGlobal string
	}{
		{
			name:   "slow turnover is reported per day",
			hourly: "5", equity: "1000",
			wantPeriod: PerDay, wantGlobal: "120",
		},
		{
			name:   "fast turnover stays per hour",
			hourly: "500", equity: "1000",
			wantPeriod: PerHour, wantGlobal: "500",
		},
		{
			name:   "exactly a tenth of equity stays per hour",
			hourly: "100", equity: "1000",
			wantPeriod: PerHour, wantGlobal: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := RateSet{Global: FlowRate{Notional: d(tt.hourly)}}
			out, period := NormalizeRates(in, d(tt.equity))
			if period != tt.wantPeriod {
				t.Errorf("period = %q, want %q", period, tt.wantPeriod)
			}
			if !out.Global.Notional.Equal(d(tt.wantGlobal)) {
				t.Errorf("Global.Notional = %s, want %s", out.Global.Notional, tt.wantGlobal)
			}
		})
	}
}

func TestNormalizeRates_ScalesAllSides(t *testing.T) {
	in := RateSet{
		Buy:    FlowRate{Notional: d("1"), OrderCount: d("0.5"), Fee: d("0.01")},
		Sell:   FlowRate{Notional: d("2"), OrderCount: d("0.25"), Fee: d("0.02")},
		Global: FlowRate{Notional: d("3"), OrderCount: d("0.75"), Fee: d("0.03")},
	}

	out, period := NormalizeRates(in, d("1000"))
	if period != PerDay {
		t.Fatalf("period = %q, want %q", period, PerDay)
	}
	if !out.Buy.OrderCount.Equal(d("12")) {
		t.Errorf("Buy.OrderCount = %s, want 12 per day", out.Buy.OrderCount)
	}
	if !out.Sell.Fee.Equal(d("0.48")) {
		t.Errorf("Sell.Fee = %s, want 0.48 per day", out.Sell.Fee)
	}
	if !out.Global.Notional.Equal(d("72")) {
		t.Errorf("Global.Notional = %s, want 72 per day", out.Global.Notional)
	}
}
