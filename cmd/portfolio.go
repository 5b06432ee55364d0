package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mockexchange/dash"
	"github.com/mockexchange/dash/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	advanced bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the account balance per asset" }
func (*portfolioCmd) Usage() string {
	return `mexdash portfolio [-advanced]

  Displays the account balance with per-asset value and equity share.
  With -advanced, displays the balance-ledger and order-book views of the
  account metrics side by side and flags every divergence between them.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.advanced, "advanced", false, "Reconcile the two computation sources of the account metrics.")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if !c.advanced {
		snap, err := client.Balance(ctx, quoteAsset())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching balance: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.PortfolioMarkdown(snap))
		return subcommands.ExitSuccess
	}

	balance, orders, cashAsset, err := client.AssetsOverview(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching assets overview: %v\n", err)
		return subcommands.ExitFailure
	}
	mm, err := dash.Reconcile(balance, orders, dash.DefaultReconciledFields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reconciling sources: %v\n", err)
		return subcommands.ExitFailure
	}
	if cashAsset == "" {
		cashAsset = quoteAsset()
	}
	printMarkdown(renderer.AdvancedPortfolioMarkdown(balance, orders, mm, cashAsset, cashAsset))
	return subcommands.ExitSuccess
}
