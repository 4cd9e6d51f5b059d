// Package renderer turns ledger data into markdown strings, ready to be
// printed raw or styled for the terminal by the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/titans/grocery"
)

// Inventory renders the full product table and its aggregate value.
func Inventory(products []grocery.Product, total grocery.Money) string {
	if len(products) == 0 {
		return "No products available in store.\n"
	}
	var b strings.Builder
	b.WriteString("# Available Products\n\n")
	writeTable(&b, products)
	fmt.Fprintf(&b, "\nTotal products value: %s\n", total)
	return b.String()
}

// SearchResults renders the products matching a search query.
func SearchResults(products []grocery.Product) string {
	if len(products) == 0 {
		return "No product found with that name.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Products Found (%d)\n\n", len(products))
	writeTable(&b, products)
	return b.String()
}

func writeTable(b *strings.Builder, products []grocery.Product) {
	b.WriteString("| ID | Name | Quantity | Unit | Price/Unit |\n")
	b.WriteString("|---:|------|---------:|------|-----------:|\n")
	for _, p := range products {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n", p.ID, p.Name, p.Quantity, p.Unit, p.UnitPrice)
	}
}

// Receipt renders a sale receipt: store header, one line per sold item,
// the transaction total, a timestamp and a closing line. Skipped lines
// are listed with their reason so the cashier knows what did not go
// through.
func Receipt(storeName string, r *grocery.Receipt) string {
	var b strings.Builder
	if r.Empty() {
		b.WriteString("No items were sold.\n")
		writeSkipped(&b, r)
		return b.String()
	}
	b.WriteString("# RECEIPT\n\n")
	fmt.Fprintf(&b, "%s\n\n", storeName)
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "- %s: %s %s @ %s = %s\n", line.Name, line.Quantity, line.Unit, line.UnitPrice, line.LineTotal)
	}
	fmt.Fprintf(&b, "\nTOTAL: %s\n\n", r.Total)
	fmt.Fprintf(&b, "Date/Time: %s\n\n", r.Time.Format("02-01-2006, 15:04"))
	b.WriteString("THANK YOU FOR SHOPPING WITH US!\n")
	writeSkipped(&b, r)
	return b.String()
}

func writeSkipped(b *strings.Builder, r *grocery.Receipt) {
	if len(r.Skipped) == 0 {
		return
	}
	b.WriteString("\nNot sold:\n\n")
	for _, s := range r.Skipped {
		fmt.Fprintf(b, "- %s: %v\n", s.Name, s.Err)
	}
}
