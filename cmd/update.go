package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/titans/grocery"
)

type updateCmd struct {
	name     string
	quantity string
	unit     string
	price    string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change fields of an existing product" }
func (*updateCmd) Usage() string {
	return `gms update [-name <name>] [-q <quantity>] [-u <unit>] [-p <price>] <id>

  Updates the provided fields of the product with the given id. Omitted
  fields keep their current value. All provided fields are validated
  before any change is applied.

Usage Examples:
$ gms update -p 130 1
$ gms update -name "basmati rice" -q 8 1
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New product name.")
	f.StringVar(&c.quantity, "q", "", "New quantity in stock.")
	f.StringVar(&c.unit, "u", "", "New unit of measure.")
	f.StringVar(&c.price, "p", "", "New price per unit.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product id.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid product id %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	var upd grocery.ProductUpdate
	if c.name != "" {
		upd.Name = &c.name
	}
	if c.quantity != "" {
		q, err := grocery.ParseQuantity(c.quantity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", c.quantity, err)
			return subcommands.ExitUsageError
		}
		upd.Quantity = &q
	}
	if c.unit != "" {
		upd.Unit = &c.unit
	}
	if c.price != "" {
		p, err := grocery.ParseMoney(c.price, Currency())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
			return subcommands.ExitUsageError
		}
		upd.UnitPrice = &p
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.Update(id, upd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Product ID %d updated successfully.\n", id)
	return subcommands.ExitSuccess
}
