package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/titans/grocery/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "view all products and the total inventory value" }
func (*listCmd) Usage() string {
	return `gms list

  Lists every product in the inventory with its quantity, unit and price
  per unit, and the aggregate value of the whole stock.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	products := slices.Collect(ledger.Products())
	printMarkdown(renderer.Inventory(products, ledger.TotalValue()))
	return subcommands.ExitSuccess
}
