// Package cmd implements the CLI application to manage a store inventory.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/subosito/gotenv"
	"github.com/titans/grocery"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&menuCmd{},
	&addCmd{},
	&listCmd{},
	&deleteCmd{},
	&updateCmd{},
	&restockCmd{},
	&searchCmd{},
	&sellCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables for the app-wide settings.

var (
	fileFlag     = flag.String("file", "", "Path to the inventory CSV file (default $GMS_INVENTORY_FILE or \"inventory.csv\")")
	storeFlag    = flag.String("store", "", "Store name printed on receipts (default $GMS_STORE_NAME)")
	currencyFlag = flag.String("currency", "", "Currency code or prefix symbol for prices (default $GMS_CURRENCY or \"sh\")")
)

func init() {
	// Optional .env in the working directory seeds the GMS_* defaults.
	_ = gotenv.Load()
}

// InventoryFile returns the path of the backing CSV file.
func InventoryFile() string {
	if *fileFlag != "" {
		return *fileFlag
	}
	if v := os.Getenv("GMS_INVENTORY_FILE"); v != "" {
		return v
	}
	return "inventory.csv"
}

// StoreName returns the store name used as receipt header.
func StoreName() string {
	if *storeFlag != "" {
		return *storeFlag
	}
	if v := os.Getenv("GMS_STORE_NAME"); v != "" {
		return v
	}
	return "TITANS GROCERY STORE"
}

// Currency returns the currency code or prefix symbol for prices.
func Currency() string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if v := os.Getenv("GMS_CURRENCY"); v != "" {
		return v
	}
	return "sh"
}

// OpenLedger loads the inventory from the app's backing file into a
// ledger bound to it, so every mutation is saved back.
func OpenLedger() (*grocery.Ledger, error) {
	return grocery.Open(grocery.NewStore(InventoryFile(), Currency()))
}

// printMarkdown renders markdown for the terminal and prints it. When
// rendering fails the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
