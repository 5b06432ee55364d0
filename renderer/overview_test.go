package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mockexchange/dash"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return v
}

func TestOverviewMarkdown(t *testing.T) {
	summary := dash.Aggregate([]dash.TradeRecord{
		{Side: dash.Buy, Notional: d(t, "1000"), Fee: d(t, "1"), Amount: d(t, "2"), CurrentValue: decimal.NullDecimal{Decimal: d(t, "1100"), Valid: true}},
		{Side: dash.Sell, Notional: d(t, "200"), Fee: d(t, "0.5"), Amount: d(t, "0.4"), CurrentValue: decimal.NullDecimal{Decimal: d(t, "220"), Valid: true}},
	})
	capital := dash.CapitalSnapshot{
		Equity:        d(t, "1500"),
		PaidInCapital: d(t, "1200"),
		Distributions: d(t, "100"),
	}
	m := dash.ComputeMultiples(capital, summary.Buy.AmountValue, summary.Sell.AmountValue, summary.Total.Fee)
	rates, err := dash.HourlyRates(summary, 2*time.Hour)
	if err != nil {
		t.Fatalf("HourlyRates() error = %v", err)
	}
	rates, period := dash.NormalizeRates(rates, capital.Equity)

	got := OverviewMarkdown(summary, m, rates, period, "USDT")

	for _, want := range []string{
		"# Trades Overview",
		"Capital At Risk (Cost)",
		"1,100.00 USDT", // net investment
		"↗ BUY",
		"↘ SELL",
		"GLOBAL",
		"Turnover Rates (per h)", // 600/h over 1500 equity is above the day threshold
		"1,200.00 USDT",          // global notional
	} {
		if !strings.Contains(got, want) {
			t.Errorf("OverviewMarkdown() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, Warning) {
		t.Errorf("OverviewMarkdown() carries a warning marker with complete data:\n%s", got)
	}
}

func TestOverviewMarkdown_IncompleteDataIsFlagged(t *testing.T) {
	summary := dash.Aggregate([]dash.TradeRecord{
		{Side: dash.Buy, Notional: d(t, "100"), Fee: d(t, "1"), Amount: d(t, "1")}, // unpriced
	})
	capital := dash.CapitalSnapshot{Equity: d(t, "100"), PaidInCapital: d(t, "100")}
	m := dash.ComputeMultiples(capital, summary.Buy.AmountValue, summary.Sell.AmountValue, summary.Total.Fee)

	got := OverviewMarkdown(summary, m, dash.RateSet{}, dash.PerHour, "USDT")

	if !strings.Contains(got, Warning) {
		t.Errorf("OverviewMarkdown() missing the warning marker for incomplete data:\n%s", got)
	}
}

func TestOverviewMarkdown_FreeCarrySurplus(t *testing.T) {
	summary := dash.TradesSummary{
		Buy:  dash.SideSummary{Count: 1, AmountValue: d(t, "500")},
		Sell: dash.SideSummary{Count: 1, AmountValue: d(t, "100")},
	}
	summary.Total = dash.SideSummary{Count: 2, AmountValue: d(t, "600")}
	// distributions exceed paid-in: nothing is at risk anymore
	capital := dash.CapitalSnapshot{
		Equity:        d(t, "400"),
		PaidInCapital: d(t, "1000"),
		Distributions: d(t, "1200"),
	}
	m := dash.ComputeMultiples(capital, summary.Buy.AmountValue, summary.Sell.AmountValue, summary.Total.Fee)

	got := OverviewMarkdown(summary, m, dash.RateSet{}, dash.PerDay, "USDT")

	if !strings.Contains(got, "Free Carry Surplus") {
		t.Errorf("OverviewMarkdown() missing the free carry surplus branch:\n%s", got)
	}
	if strings.Contains(got, "Capital At Risk") {
		t.Errorf("OverviewMarkdown() shows capital at risk with non-positive net investment:\n%s", got)
	}
}
