package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/mockexchange/dash"
)

// SideMarker decorates a side with its direction arrow.
func SideMarker(side dash.Side) string {
	if side == dash.Sell {
		return "↘ SELL"
	}
	return "↗ BUY"
}

// OverviewMarkdown renders the trades overview: open market value, P&L, ROI,
// paid-in multiples, per-side activity and normalized turnover rates. Figures
// computed from incomplete mark-to-market data carry the warning marker.
func OverviewMarkdown(s dash.TradesSummary, m dash.Multiples, rates dash.RateSet, period dash.RatePeriod, unit string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	incomplete := s.Total.AmountValueIncomplete

	doc.H1("Trades Overview")
	doc.Table(md.TableSet{
		Header: []string{"Market Value", "P&L Net (After Fees)", "P&L Gross (Before Fees)"},
		Rows: [][]string{{
			Decimal(m.AssetsCurrentValue, unit),
			Flagged(Decimal(m.NetEarnings, unit), incomplete),
			Flagged(Decimal(m.GrossEarnings, unit), incomplete),
		}},
	})

	doc.H2("Capital & ROI")
	switch {
	case m.NetInvestment.IsPositive():
		doc.Table(md.TableSet{
			Header: []string{"Capital At Risk (Cost)", "ROI Net on Cost", "ROI Gross on Cost"},
			Rows: [][]string{{
				Decimal(m.NetInvestment, unit),
				Flagged(Percent(m.NetROIOnCost), incomplete),
				Flagged(Percent(m.GrossROIOnCost), incomplete),
			}},
		})
	case m.AssetsCurrentValue.IsPositive():
		// nothing left at risk but positions are still held: the account
		// runs on a free carry surplus
		doc.Table(md.TableSet{
			Header: []string{"Free Carry Surplus", "ROI Net on Value", "ROI Gross on Value"},
			Rows: [][]string{{
				Decimal(m.NetInvestment.Abs(), unit),
				Flagged(Percent(m.NetROIOnValue), incomplete),
				Flagged(Percent(m.GrossROIOnValue), incomplete),
			}},
		})
	}

	doc.H2("Multiples")
	doc.Table(md.TableSet{
		Header: []string{"RVPI (Residual Value to Paid-In)", "DPI (Distributions to Paid-In)", "TVPI (Total Value to Paid-In)"},
		Rows: [][]string{{
			Flagged(Percent(m.RVPI), incomplete),
			Flagged(Percent(m.DPI), incomplete),
			Flagged(Percent(m.TVPI), incomplete),
		}},
	})

	doc.H2("Trading Activity")
	activity := func(label string, side dash.SideSummary) []string {
		var avg decimal.NullDecimal
		if side.Count > 0 {
			avg = decimal.NullDecimal{
				Decimal: side.Notional.Div(decimal.NewFromInt(int64(side.Count))),
				Valid:   true,
			}
		}
		return []string{
			label,
			Decimal(side.Notional, unit),
			fmt.Sprintf("%d", side.Count),
			Value(avg, unit),
			Decimal(side.Fee, unit),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Notional", "Orders", "Avg. Order Size", "Paid Fees"},
		Rows: [][]string{
			activity("GLOBAL", s.Total),
			activity(SideMarker(dash.Buy), s.Buy),
			activity(SideMarker(dash.Sell), s.Sell),
		},
	})

	doc.H2(fmt.Sprintf("Turnover Rates (per %s)", period))
	rate := func(label string, f dash.FlowRate) []string {
		return []string{
			label,
			Decimal(f.Notional, unit),
			Decimal(f.OrderCount, ""),
			Decimal(f.Fee, unit),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Notional", "Orders", "Fees"},
		Rows: [][]string{
			rate("GLOBAL", rates.Global),
			rate(SideMarker(dash.Buy), rates.Buy),
			rate(SideMarker(dash.Sell), rates.Sell),
		},
	})

	return doc.String()
}
