package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mockexchange/dash"
)

// PortfolioMarkdown renders the account balance as a per-asset table with the
// quote-denominated value and equity share of each position. Assets without a
// resolvable price still show their amounts, with sentinel value and share.
func PortfolioMarkdown(b dash.BalanceSnapshot) string {
	equity := b.Equity()

	var w strings.Builder
	fmt.Fprintf(&w, "# Portfolio\n\n")
	fmt.Fprintf(&w, "Total Equity: %s\n\n", Decimal(equity, b.QuoteAsset))
	fmt.Fprintln(&w, "| Asset | Amount | Free | In Orders | Value | Share |")
	fmt.Fprintln(&w, "|:---|---:|---:|---:|---:|---:|")

	assets := make([]dash.BalanceAsset, len(b.Assets))
	copy(assets, b.Assets)
	// biggest positions first, unpriced assets last
	sort.SliceStable(assets, func(i, j int) bool {
		vi, vj := assets[i].Value(), assets[j].Value()
		if vi.Valid != vj.Valid {
			return vi.Valid
		}
		if !vi.Valid {
			return assets[i].Asset < assets[j].Asset
		}
		return vi.Decimal.GreaterThan(vj.Decimal)
	})

	for _, a := range assets {
		share := decimal.NullDecimal{}
		if v := a.Value(); v.Valid && equity.IsPositive() {
			share = decimal.NullDecimal{Decimal: v.Decimal.Div(equity), Valid: true}
		}
		fmt.Fprintf(&w, "| %s | %s | %s | %s | %s | %s |\n",
			a.Asset,
			Decimal(a.Total, ""),
			Decimal(a.Free, ""),
			Decimal(a.Used, ""),
			Value(a.Value(), b.QuoteAsset),
			Percent(share),
		)
	}
	return w.String()
}

// metricLabels maps reconciled field names to display labels, in render order.
var metricLabels = []struct{ field, label string }{
	{"total_equity", "Total Equity"},
	{"total_free_value", "Total Free Value"},
	{"total_frozen_value", "Total Frozen Value"},
	{"cash_total_value", "Cash Total Value"},
	{"cash_free_value", "Cash Free Value"},
	{"cash_frozen_value", "Cash Frozen Value"},
	{"assets_total_value", "Assets Total Value"},
	{"assets_free_value", "Assets Free Value"},
	{"assets_frozen_value", "Assets Frozen Value"},
}

// AdvancedPortfolioMarkdown renders both computation sources of the account
// metrics side by side, marking every field where the sources disagree. The
// cash asset is named so the reader knows which asset the cash rows cover.
func AdvancedPortfolioMarkdown(a, b dash.MetricSet, mm dash.MismatchMap, cashAsset, unit string) string {
	var w strings.Builder
	fmt.Fprintf(&w, "# Portfolio (Advanced)\n\n")
	fmt.Fprintf(&w, "Cash asset: %s\n\n", cashAsset)
	if mm.Any() {
		fmt.Fprintf(&w, "%s The two computation sources disagree on the flagged figures.\n\n", Warning)
	}
	fmt.Fprintf(&w, "| Metric | %s | %s |\n", a.Name, b.Name)
	fmt.Fprintln(&w, "|:---|---:|---:|")
	for _, m := range metricLabels {
		va, aok := a.Get(m.field)
		vb, bok := b.Get(m.field)
		ca, cb := Sentinel, Sentinel
		if aok {
			ca = Decimal(va, unit)
		}
		if bok {
			cb = Decimal(vb, unit)
		}
		fmt.Fprintf(&w, "| %s | %s | %s |\n",
			Flagged(m.label, mm[m.field]), ca, cb)
	}
	return w.String()
}
