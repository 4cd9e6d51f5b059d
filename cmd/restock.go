package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/titans/grocery"
)

type restockCmd struct{}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add stock to an existing product" }
func (*restockCmd) Usage() string {
	return `gms restock <name> <quantity>

  Adds the quantity to the current stock of the product matching the
  name (ignoring case). The quantity must be a positive number.

Usage Examples:
$ gms restock rice 5
`
}

func (*restockCmd) SetFlags(*flag.FlagSet) {}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a product name and a quantity.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	add, err := grocery.ParseQuantity(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quantity, err := ledger.Restock(name, add)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p, _ := ledger.Find(name)
	fmt.Printf("%q restocked. New quantity: %s %s\n", p.Name, quantity, p.Unit)
	return subcommands.ExitSuccess
}
