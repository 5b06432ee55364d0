package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/mockexchange/dash"
	"github.com/mockexchange/dash/renderer"
)

// overviewCmd holds the flags for the 'overview' subcommand.
type overviewCmd struct {
	tail   int
	window time.Duration
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the trades performance overview" }
func (*overviewCmd) Usage() string {
	return `mexdash overview [-tail <n>] [-window <duration>]

  Aggregates the most recent trades and displays market value, P&L, ROI,
  paid-in multiples and normalized turnover rates.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 50, "How many most-recent trades to aggregate.")
	f.DurationVar(&c.window, "window", 24*time.Hour, "Elapsed time the aggregated trades cover; rates are computed over it.")
}

func (c *overviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, err := client.Trades(ctx, quoteAsset(), c.tail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching trades: %v\n", err)
		return subcommands.ExitFailure
	}
	capital, err := client.Capital(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching capital: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := dash.Aggregate(trades)
	multiples := dash.ComputeMultiples(capital, summary.Buy.AmountValue, summary.Sell.AmountValue, summary.Total.Fee)

	rates, err := dash.HourlyRates(summary, c.window)
	if errors.Is(err, dash.ErrZeroTimespan) {
		fmt.Fprintf(os.Stderr, "Error: -window must be a positive duration\n")
		return subcommands.ExitUsageError
	}
	rates, period := dash.NormalizeRates(rates, capital.Equity)

	printMarkdown(renderer.OverviewMarkdown(summary, multiples, rates, period, quoteAsset()))
	return subcommands.ExitSuccess
}
