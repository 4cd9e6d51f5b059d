package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/titans/grocery"
	"github.com/titans/grocery/renderer"
)

// menuCmd is the interactive store menu, the way the application is
// normally used. It reads one line per prompt; entering '0' at any
// prompt aborts the current operation and returns to the menu without
// side effects.
type menuCmd struct {
	in  io.Reader
	out io.Writer
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive store menu" }
func (*menuCmd) Usage() string {
	return `gms menu

  Starts the interactive menu. This is also what running gms with no
  arguments does.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	c.run(ledger)
	return subcommands.ExitSuccess
}

const menuText = `
Grocery Management System
1. Add new product
2. View all products
3. Delete item
4. Update item
5. Restock item
6. Search item
7. Sell product
8. Exit
`

// run loops over the menu until exit is chosen or the input ends.
func (c *menuCmd) run(ledger *grocery.Ledger) {
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, menuText)
		fmt.Fprint(c.out, "Enter your choice: ")
		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			c.register(scanner, ledger)
		case "2":
			c.list(ledger)
		case "3":
			c.delete(scanner, ledger)
		case "4":
			c.update(scanner, ledger)
		case "5":
			c.restock(scanner, ledger)
		case "6":
			c.search(scanner, ledger)
		case "7":
			c.sell(scanner, ledger)
		case "8":
			fmt.Fprintln(c.out, "Exiting system...")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

// prompt reads one line. It reports abort when the user enters '0' or
// the input ends.
func (c *menuCmd) prompt(s *bufio.Scanner, label string) (answer string, abort bool) {
	fmt.Fprint(c.out, label)
	if !s.Scan() {
		return "", true
	}
	answer = strings.TrimSpace(s.Text())
	if answer == "0" {
		return "", true
	}
	return answer, false
}

func (c *menuCmd) register(s *bufio.Scanner, ledger *grocery.Ledger) {
	fmt.Fprintln(c.out, "\n=== Register New Product ===")
	name, abort := c.prompt(s, "Enter name of item (or '0' to go back): ")
	if abort {
		return
	}
	qty, abort := c.prompt(s, "Enter quantity of the item (or '0' to go back): ")
	if abort {
		return
	}
	quantity, err := grocery.ParseQuantity(qty)
	if err != nil {
		fmt.Fprintln(c.out, "Error: Quantity must be a positive number!")
		return
	}
	unit, abort := c.prompt(s, "Enter unit (e.g. kg, g, l, pieces) (or '0' to go back): ")
	if abort {
		return
	}
	priceStr, abort := c.prompt(s, "Enter price per unit (or '0' to go back): ")
	if abort {
		return
	}
	price, err := grocery.ParseMoney(priceStr, Currency())
	if err != nil {
		fmt.Fprintln(c.out, "Error: Price must be a positive number!")
		return
	}

	id, err := ledger.Register(name, quantity, unit, price)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\nAdded successfully: Product %q added with ID %d!\n", name, id)
}

func (c *menuCmd) list(ledger *grocery.Ledger) {
	products := slices.Collect(ledger.Products())
	fmt.Fprint(c.out, renderer.Inventory(products, ledger.TotalValue()))
}

func (c *menuCmd) delete(s *bufio.Scanner, ledger *grocery.Ledger) {
	fmt.Fprintln(c.out, "\n=== Delete Item ===")
	name, abort := c.prompt(s, "Enter item name to delete (or '0' to go back): ")
	if abort {
		return
	}
	p, err := ledger.Delete(name)
	if err != nil {
		fmt.Fprintln(c.out, "Item not found")
		return
	}
	fmt.Fprintf(c.out, "Item %q removed successfully.\n", p.Name)
}

func (c *menuCmd) update(s *bufio.Scanner, ledger *grocery.Ledger) {
	fmt.Fprintln(c.out, "\n=== Update Product ===")
	idStr, abort := c.prompt(s, "Enter the ID of item to update (or '0' to go back): ")
	if abort {
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		fmt.Fprintln(c.out, "Error: Invalid product ID!")
		return
	}
	p, ok := ledger.Get(id)
	if !ok {
		fmt.Fprintln(c.out, "Error: Invalid product ID!")
		return
	}
	fmt.Fprintf(c.out, "Current details: %d %s %s %s %s\n", p.ID, p.Name, p.Quantity, p.Unit, p.UnitPrice)

	var upd grocery.ProductUpdate
	name, abort := c.prompt(s, "Enter new name (leave blank to keep current) (or '0' to go back): ")
	if abort {
		return
	}
	if name != "" {
		upd.Name = &name
	}
	qty, abort := c.prompt(s, "Enter new quantity (leave blank to keep current) (or '0' to go back): ")
	if abort {
		return
	}
	if qty != "" {
		quantity, err := grocery.ParseQuantity(qty)
		if err != nil {
			fmt.Fprintln(c.out, "Error: Quantity must be a positive number!")
			return
		}
		upd.Quantity = &quantity
	}
	unit, abort := c.prompt(s, "Enter new unit (leave blank to keep current) (or '0' to go back): ")
	if abort {
		return
	}
	if unit != "" {
		upd.Unit = &unit
	}
	priceStr, abort := c.prompt(s, "Enter new price (leave blank to keep current) (or '0' to go back): ")
	if abort {
		return
	}
	if priceStr != "" {
		price, err := grocery.ParseMoney(priceStr, Currency())
		if err != nil {
			fmt.Fprintln(c.out, "Error: Price must be a positive number!")
			return
		}
		upd.UnitPrice = &price
	}

	if err := ledger.Update(id, upd); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Product ID %d updated successfully!\n", id)
}

func (c *menuCmd) restock(s *bufio.Scanner, ledger *grocery.Ledger) {
	fmt.Fprintln(c.out, "\n=== Restock a Product ===")
	if ledger.Len() == 0 {
		fmt.Fprintln(c.out, "No products in the system yet.")
		return
	}
	name, abort := c.prompt(s, "Enter product name to restock (or '0' to go back): ")
	if abort {
		return
	}
	p, ok := ledger.Find(name)
	if !ok {
		fmt.Fprintln(c.out, "Product not found.")
		return
	}
	fmt.Fprintf(c.out, "Current stock: %s %s\n", p.Quantity, p.Unit)
	qty, abort := c.prompt(s, "Enter quantity to add (or '0' to go back): ")
	if abort {
		return
	}
	add, err := grocery.ParseQuantity(qty)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid quantity.")
		return
	}
	quantity, err := ledger.Restock(name, add)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "%q restocked. New quantity: %s %s\n", p.Name, quantity, p.Unit)
}

func (c *menuCmd) search(s *bufio.Scanner, ledger *grocery.Ledger) {
	fmt.Fprintln(c.out, "\n=== Search for a Product ===")
	if ledger.Len() == 0 {
		fmt.Fprintln(c.out, "No products in the system.")
		return
	}
	query, abort := c.prompt(s, "Enter the product name (or '0' to go back): ")
	if abort {
		return
	}
	fmt.Fprint(c.out, renderer.SearchResults(ledger.Search(query)))
}

func (c *menuCmd) sell(s *bufio.Scanner, ledger *grocery.Ledger) {
	fmt.Fprintln(c.out, "\n=== Sell Products ===")
	if ledger.Len() == 0 {
		fmt.Fprintln(c.out, "No products available to sell.")
		return
	}

	var items []grocery.LineItem
	for {
		name, done := c.prompt(s, "Enter the product name to sell (or '0' to end sale): ")
		if done {
			break
		}
		qty, cancel := c.prompt(s, "Enter quantity to sell (or '0' to cancel this item): ")
		if cancel {
			continue
		}
		quantity, err := grocery.ParseQuantity(qty)
		if err != nil {
			fmt.Fprintln(c.out, "Error: Quantity must be a positive number!")
			continue
		}
		items = append(items, grocery.LineItem{Name: name, Quantity: quantity})
	}

	receipt, err := ledger.Sell(items)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(c.out, renderer.Receipt(StoreName(), receipt))
}
