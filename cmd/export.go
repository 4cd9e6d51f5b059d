package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the inventory to an Excel workbook" }
func (*exportCmd) Usage() string {
	return `gms export [-o <file.xlsx>]

  Writes the whole inventory, one product per row plus a total value
  row, to an .xlsx workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "inventory.xlsx", "Output .xlsx file.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	x := excelize.NewFile()
	defer func() { _ = x.Close() }()

	sheet := x.GetSheetName(x.GetActiveSheetIndex())

	header := []interface{}{"id", "name", "quantity", "unit", "price-per-unit", "value"}
	if err := x.SetSheetRow(sheet, "A1", &header); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write header: %v\n", err)
		return subcommands.ExitFailure
	}

	row := 2
	for p := range ledger.Products() {
		excelRow := []interface{}{p.ID, p.Name, p.Quantity.String(), p.Unit, p.UnitPrice.String(), p.Value().String()}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not address row %d: %v\n", row, err)
			return subcommands.ExitFailure
		}
		if err := x.SetSheetRow(sheet, cell, &excelRow); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write row %d: %v\n", row, err)
			return subcommands.ExitFailure
		}
		row++
	}

	totalRow := []interface{}{"", "", "", "", "total", ledger.TotalValue().String()}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not address total row: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := x.SetSheetRow(sheet, cell, &totalRow); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write total row: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := x.SaveAs(c.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Inventory exported to %s\n", c.output)
	return subcommands.ExitSuccess
}
