package grocery

import "time"

// LineItem is one (product name, quantity) request within a multi-item
// sale. Names are matched case-insensitively against the inventory.
type LineItem struct {
	Name     string
	Quantity Quantity
}

// ReceiptLine records one successfully sold line.
type ReceiptLine struct {
	Name      string
	Quantity  Quantity
	Unit      string
	UnitPrice Money
	LineTotal Money
}

// SkippedLine records a sale line that could not be fulfilled, with the
// reason: a NotFoundError, a ValidationError or an InsufficientStockError.
type SkippedLine struct {
	Name string
	Err  error
}

// Receipt is the outcome of a sale transaction. A sale never fails as a
// whole: unfulfillable lines are collected in Skipped and the rest are
// sold. When no line succeeds the receipt is empty and nothing was saved.
type Receipt struct {
	Lines   []ReceiptLine
	Skipped []SkippedLine
	Total   Money
	Time    time.Time
}

// Empty reports whether no line of the sale was fulfilled.
func (r *Receipt) Empty() bool {
	return len(r.Lines) == 0
}
