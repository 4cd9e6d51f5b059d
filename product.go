package grocery

import "strings"

// Product is one tracked inventory record.
type Product struct {
	ID        int      // positive, unique, immutable once assigned
	Name      string   // non-empty, case-insensitively unique
	Quantity  Quantity // never negative
	Unit      string   // free-text unit of measure, e.g. "kg", "pieces"
	UnitPrice Money    // positive price per one unit
}

// Value returns the stock value of this record, quantity times unit price.
func (p Product) Value() Money {
	return p.UnitPrice.Mul(p.Quantity)
}

// ProductUpdate describes the fields of an existing product to change.
// Nil fields keep their prior value.
type ProductUpdate struct {
	Name      *string
	Quantity  *Quantity
	Unit      *string
	UnitPrice *Money
}

// equalFold reports whether two product names are equal ignoring case.
// Name matching is case-insensitive everywhere in the ledger.
func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	return nil
}

func validateQuantity(q Quantity) error {
	if !q.IsPositive() {
		return &ValidationError{Field: "quantity", Reason: "must be a positive number"}
	}
	return nil
}

func validateUnit(unit string) error {
	if strings.TrimSpace(unit) == "" {
		return &ValidationError{Field: "unit", Reason: "cannot be empty"}
	}
	return nil
}

func validateUnitPrice(price Money) error {
	if !price.IsPositive() {
		return &ValidationError{Field: "price", Reason: "must be a positive number"}
	}
	return nil
}
