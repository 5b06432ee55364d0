package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/mockexchange/dash/palette"
	"github.com/mockexchange/dash/renderer"
)

// ordersCmd holds the flags for the 'orders' subcommand.
type ordersCmd struct {
	status      string
	tail        int
	freshWindow time.Duration
	levels      int
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "display recent orders, colorized by status and age" }
func (*ordersCmd) Usage() string {
	return `mexdash orders [-status <status>] [-tail <n>] [-fresh-window <duration>] [-levels <n>]

  Displays the most recent orders. Each row is colored by order status and
  fades toward black as the order ages, one shade per fresh window. Rows
  older than all shades, or with no parsable timestamp, stay uncolored.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only show orders with this status, e.g. new or filled. Empty shows all.")
	f.IntVar(&c.tail, "tail", 50, "How many most-recent orders to pull.")
	f.DurationVar(&c.freshWindow, "fresh-window", envFreshWindow(), "Age of one fade shade.")
	f.IntVar(&c.levels, "levels", envFadeLevels(), "Number of fade shades, at least 2.")
}

func (c *ordersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	pal, err := palette.New(c.levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	orders, err := client.Orders(ctx, c.status, c.tail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching orders: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Print(renderer.OrderTable(orders, pal, time.Now(), c.freshWindow))
	return subcommands.ExitSuccess
}
