package grocery

import "fmt"

// ValidationError reports a bad or missing user-supplied field. It is
// non-fatal: the offending operation is aborted and nothing is mutated or
// saved.
type ValidationError struct {
	Field  string // the field that failed validation
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that a referenced product does not exist, either
// by name or by id.
type NotFoundError struct {
	Name string
	ID   int
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("product %q not found", e.Name)
	}
	return fmt.Sprintf("product id %d not found", e.ID)
}

// InsufficientStockError reports a sale line requesting more than is in
// stock. It is deliberately distinct from NotFoundError so the receipt
// can tell the cashier why the line was skipped.
type InsufficientStockError struct {
	Name      string
	Requested Quantity
	Available Quantity
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %s, available %s", e.Name, e.Requested, e.Available)
}

// CorruptDataError reports an unreadable or malformed backing store. Row
// is the 1-based row in the CSV file (counting the header), or 0 when the
// failure cannot be pinned to a single row.
type CorruptDataError struct {
	Row int
	Err error
}

func (e *CorruptDataError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("corrupt inventory data on row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("corrupt inventory data: %v", e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }
