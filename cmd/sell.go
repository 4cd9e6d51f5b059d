package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/titans/grocery"
	"github.com/titans/grocery/renderer"
)

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell products and print a receipt" }
func (*sellCmd) Usage() string {
	return `gms sell <name>=<quantity> [<name>=<quantity> ...]

  Processes a multi-item sale. Lines are handled in order; a line that
  cannot be fulfilled (unknown product, invalid quantity, insufficient
  stock) is skipped and reported, without aborting the sale. The
  inventory is saved once if at least one line was sold.

Usage Examples:
$ gms sell rice=3 soap=2
`
}

func (*sellCmd) SetFlags(*flag.FlagSet) {}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one <name>=<quantity> line item.")
		return subcommands.ExitUsageError
	}

	var items []grocery.LineItem
	for _, arg := range f.Args() {
		name, qty, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: malformed line item %q, expected <name>=<quantity>.\n", arg)
			return subcommands.ExitUsageError
		}
		quantity, err := grocery.ParseQuantity(qty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid quantity %q for %q: %v\n", qty, name, err)
			return subcommands.ExitUsageError
		}
		items = append(items, grocery.LineItem{Name: name, Quantity: quantity})
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	receipt, err := ledger.Sell(items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Receipt(StoreName(), receipt))
	return subcommands.ExitSuccess
}
