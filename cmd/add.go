package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/titans/grocery"
)

type addCmd struct {
	quantity string
	unit     string
	price    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "register a new product in the inventory" }
func (*addCmd) Usage() string {
	return `gms add -q <quantity> -u <unit> -p <price> <name>

  Registers a new product. The name must not already exist in the
  inventory (names are matched ignoring case), and quantity and price
  must be positive numbers.

Usage Examples:
$ gms add -q 10.5 -u kg -p 120 rice
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quantity, "q", "", "Initial quantity in stock.")
	f.StringVar(&c.unit, "u", "", "Unit of measure, e.g. kg, g, l, pieces.")
	f.StringVar(&c.price, "p", "", "Price per unit.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product name.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	quantity, err := grocery.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	price, err := grocery.ParseMoney(c.price, Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := ledger.Register(name, quantity, c.unit, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Product %q added with ID %d.\n", name, id)
	return subcommands.ExitSuccess
}
