package grocery

import (
	"errors"
	"testing"
)

// newTestLedger returns an unbound ledger pre-filled with products.
func newTestLedger(t *testing.T, products ...Product) *Ledger {
	t.Helper()
	l := NewLedger()
	for _, p := range products {
		if _, err := l.Register(p.Name, p.Quantity, p.Unit, p.UnitPrice); err != nil {
			t.Fatalf("could not register %q: %v", p.Name, err)
		}
	}
	return l
}

func TestLedger_Register(t *testing.T) {
	l := NewLedger()

	id, err := l.Register("rice", Q(10), "kg", M(12.5, "sh"))
	if err != nil {
		t.Fatalf("Register(rice) returned error: %v", err)
	}
	if id != 1 {
		t.Errorf("Register on empty table assigned id %d, want 1", id)
	}

	p, ok := l.Get(1)
	if !ok {
		t.Fatal("registered product not found by id")
	}
	if p.Name != "rice" || !p.Quantity.Equal(Q(10)) || p.Unit != "kg" || !p.UnitPrice.Equal(M(12.5, "sh")) {
		t.Errorf("registered product = %+v, want rice 10 kg sh12.50", p)
	}

	id, err = l.Register("beans", Q(5), "kg", M(80, "sh"))
	if err != nil {
		t.Fatalf("Register(beans) returned error: %v", err)
	}
	if id != 2 {
		t.Errorf("second Register assigned id %d, want 2", id)
	}
}

func TestLedger_Register_Validation(t *testing.T) {
	testCases := []struct {
		name     string
		product  string
		quantity Quantity
		unit     string
		price    Money
	}{
		{name: "empty name", product: "", quantity: Q(1), unit: "kg", price: M(1, "sh")},
		{name: "blank name", product: "   ", quantity: Q(1), unit: "kg", price: M(1, "sh")},
		{name: "duplicate name", product: "rice", quantity: Q(1), unit: "kg", price: M(1, "sh")},
		{name: "duplicate name other case", product: "RiCe", quantity: Q(1), unit: "kg", price: M(1, "sh")},
		{name: "zero quantity", product: "beans", quantity: Q(0), unit: "kg", price: M(1, "sh")},
		{name: "negative quantity", product: "beans", quantity: Q(-2), unit: "kg", price: M(1, "sh")},
		{name: "empty unit", product: "beans", quantity: Q(1), unit: "", price: M(1, "sh")},
		{name: "zero price", product: "beans", quantity: Q(1), unit: "kg", price: M(0, "sh")},
		{name: "negative price", product: "beans", quantity: Q(1), unit: "kg", price: M(-1, "sh")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t, Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(12.5, "sh")})

			_, err := l.Register(tc.product, tc.quantity, tc.unit, tc.price)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Register(%q) error = %v, want a ValidationError", tc.product, err)
			}
			if l.Len() != 1 {
				t.Errorf("table size = %d after rejected registration, want 1", l.Len())
			}
		})
	}
}

func TestLedger_Register_NeverReusesIDs(t *testing.T) {
	l := newTestLedger(t,
		Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(12.5, "sh")},
		Product{Name: "beans", Quantity: Q(5), Unit: "kg", UnitPrice: M(80, "sh")},
	)

	if _, err := l.Delete("rice"); err != nil {
		t.Fatalf("Delete(rice) returned error: %v", err)
	}

	id, err := l.Register("soap", Q(24), "pieces", M(35, "sh"))
	if err != nil {
		t.Fatalf("Register(soap) returned error: %v", err)
	}
	if id != 3 {
		t.Errorf("Register after deleting id 1 assigned id %d, want 3 (max+1, id 1 not reused)", id)
	}
}

func TestLedger_Update(t *testing.T) {
	newName := "basmati rice"
	newQty := Q(8)
	newUnit := "bags"
	newPrice := M(130, "sh")

	l := newTestLedger(t,
		Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(120, "sh")},
		Product{Name: "beans", Quantity: Q(5), Unit: "kg", UnitPrice: M(80, "sh")},
	)

	if err := l.Update(1, ProductUpdate{Name: &newName, Quantity: &newQty, Unit: &newUnit, UnitPrice: &newPrice}); err != nil {
		t.Fatalf("Update(1) returned error: %v", err)
	}
	p, _ := l.Get(1)
	if p.Name != newName || !p.Quantity.Equal(newQty) || p.Unit != newUnit || !p.UnitPrice.Equal(newPrice) {
		t.Errorf("updated product = %+v, want all fields changed", p)
	}

	// Omitted fields keep their prior values.
	price := M(140, "sh")
	if err := l.Update(1, ProductUpdate{UnitPrice: &price}); err != nil {
		t.Fatalf("partial Update(1) returned error: %v", err)
	}
	p, _ = l.Get(1)
	if p.Name != newName || !p.Quantity.Equal(newQty) {
		t.Errorf("partial update touched omitted fields: %+v", p)
	}
	if !p.UnitPrice.Equal(price) {
		t.Errorf("partial update price = %s, want %s", p.UnitPrice, price)
	}
}

func TestLedger_Update_NotFound(t *testing.T) {
	l := newTestLedger(t, Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(120, "sh")})

	err := l.Update(42, ProductUpdate{})
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("Update(42) error = %v, want a NotFoundError", err)
	}
}

func TestLedger_Update_Atomic(t *testing.T) {
	// A late validation failure must not apply the earlier valid fields.
	l := newTestLedger(t, Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(120, "sh")})

	newName := "basmati rice"
	badQty := Q(-1)
	err := l.Update(1, ProductUpdate{Name: &newName, Quantity: &badQty})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Update error = %v, want a ValidationError", err)
	}

	p, _ := l.Get(1)
	if p.Name != "rice" || !p.Quantity.Equal(Q(10)) {
		t.Errorf("rejected update was partially applied: %+v", p)
	}
}

func TestLedger_Update_DuplicateName(t *testing.T) {
	l := newTestLedger(t,
		Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(120, "sh")},
		Product{Name: "beans", Quantity: Q(5), Unit: "kg", UnitPrice: M(80, "sh")},
	)

	dup := "RICE"
	err := l.Update(2, ProductUpdate{Name: &dup})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Update to duplicate name error = %v, want a ValidationError", err)
	}

	// Renaming a product to its own name (different case) is allowed.
	own := "Beans"
	if err := l.Update(2, ProductUpdate{Name: &own}); err != nil {
		t.Errorf("Update to own name returned error: %v", err)
	}
}

func TestLedger_Delete(t *testing.T) {
	l := newTestLedger(t, Product{Name: "Rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(120, "sh")})

	p, err := l.Delete("rice")
	if err != nil {
		t.Fatalf("Delete(rice) returned error: %v", err)
	}
	if p.Name != "Rice" {
		t.Errorf("Delete removed %q, want Rice", p.Name)
	}
	if l.Len() != 0 {
		t.Errorf("table size = %d after delete, want 0", l.Len())
	}
}

func TestLedger_Delete_NotFound(t *testing.T) {
	l := newTestLedger(t, Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(120, "sh")})

	_, err := l.Delete("beans")
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("Delete(beans) error = %v, want a NotFoundError", err)
	}
	if l.Len() != 1 {
		t.Errorf("table size = %d after rejected delete, want 1", l.Len())
	}
}

func TestLedger_Restock(t *testing.T) {
	l := newTestLedger(t, Product{Name: "rice", Quantity: Q(7), Unit: "kg", UnitPrice: M(12.5, "sh")})

	quantity, err := l.Restock("rice", Q(5))
	if err != nil {
		t.Fatalf("Restock(rice, 5) returned error: %v", err)
	}
	if !quantity.Equal(Q(12)) {
		t.Errorf("Restock(rice, 5) = %s, want 12", quantity)
	}

	if _, err := l.Restock("beans", Q(5)); err == nil {
		t.Error("Restock of unknown product did not fail")
	}

	_, err = l.Restock("rice", Q(-1))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Restock(rice, -1) error = %v, want a ValidationError", err)
	}
	p, _ := l.Get(1)
	if !p.Quantity.Equal(Q(12)) {
		t.Errorf("rejected restock changed quantity to %s, want 12", p.Quantity)
	}
}

func TestLedger_Search(t *testing.T) {
	l := newTestLedger(t,
		Product{Name: "Basmati Rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(150, "sh")},
		Product{Name: "beans", Quantity: Q(5), Unit: "kg", UnitPrice: M(80, "sh")},
		Product{Name: "rice flour", Quantity: Q(3), Unit: "kg", UnitPrice: M(60, "sh")},
	)

	testCases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "substring both", query: "rice", want: []string{"Basmati Rice", "rice flour"}},
		{name: "case insensitive", query: "RICE", want: []string{"Basmati Rice", "rice flour"}},
		{name: "exact", query: "beans", want: []string{"beans"}},
		{name: "no match", query: "soap", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := l.Search(tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("Search(%q) returned %d products, want %d", tc.query, len(got), len(tc.want))
			}
			for i, p := range got {
				if p.Name != tc.want[i] {
					t.Errorf("Search(%q)[%d] = %q, want %q", tc.query, i, p.Name, tc.want[i])
				}
			}
		})
	}
}

func TestLedger_Sell(t *testing.T) {
	l := newTestLedger(t, Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(12.5, "sh")})

	receipt, err := l.Sell([]LineItem{{Name: "rice", Quantity: Q(3)}})
	if err != nil {
		t.Fatalf("Sell returned error: %v", err)
	}

	if len(receipt.Lines) != 1 {
		t.Fatalf("receipt has %d lines, want 1", len(receipt.Lines))
	}
	line := receipt.Lines[0]
	if line.Name != "rice" || !line.Quantity.Equal(Q(3)) || line.Unit != "kg" {
		t.Errorf("receipt line = %+v, want rice 3 kg", line)
	}
	if !line.LineTotal.Equal(M(37.5, "sh")) {
		t.Errorf("line total = %s, want sh37.50", line.LineTotal)
	}
	if !receipt.Total.Equal(M(37.5, "sh")) {
		t.Errorf("transaction total = %s, want sh37.50", receipt.Total)
	}

	p, _ := l.Get(1)
	if !p.Quantity.Equal(Q(7)) {
		t.Errorf("stock after sale = %s, want 7", p.Quantity)
	}
}

func TestLedger_Sell_InsufficientStock(t *testing.T) {
	l := newTestLedger(t, Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(12.5, "sh")})

	receipt, err := l.Sell([]LineItem{{Name: "rice", Quantity: Q(50)}})
	if err != nil {
		t.Fatalf("Sell returned error: %v", err)
	}
	if !receipt.Empty() {
		t.Error("receipt is not empty for a fully skipped sale")
	}
	if len(receipt.Skipped) != 1 {
		t.Fatalf("receipt has %d skipped lines, want 1", len(receipt.Skipped))
	}
	var iserr *InsufficientStockError
	if !errors.As(receipt.Skipped[0].Err, &iserr) {
		t.Fatalf("skipped line error = %v, want an InsufficientStockError", receipt.Skipped[0].Err)
	}
	if !iserr.Requested.Equal(Q(50)) || !iserr.Available.Equal(Q(10)) {
		t.Errorf("insufficient stock reported %s/%s, want 50/10", iserr.Requested, iserr.Available)
	}

	p, _ := l.Get(1)
	if !p.Quantity.Equal(Q(10)) {
		t.Errorf("stock after skipped line = %s, want 10 unchanged", p.Quantity)
	}
}

func TestLedger_Sell_MixedLines(t *testing.T) {
	l := newTestLedger(t,
		Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(12.5, "sh")},
		Product{Name: "soap", Quantity: Q(4), Unit: "pieces", UnitPrice: M(35, "sh")},
	)

	receipt, err := l.Sell([]LineItem{
		{Name: "rice", Quantity: Q(2)},
		{Name: "bread", Quantity: Q(1)},  // not found
		{Name: "soap", Quantity: Q(9)},   // insufficient stock
		{Name: "rice", Quantity: Q(0)},   // invalid quantity
		{Name: "SOAP", Quantity: Q(2)},   // sold, case-insensitive match
	})
	if err != nil {
		t.Fatalf("Sell returned error: %v", err)
	}

	if len(receipt.Lines) != 2 {
		t.Fatalf("receipt has %d lines, want 2", len(receipt.Lines))
	}
	if len(receipt.Skipped) != 3 {
		t.Fatalf("receipt has %d skipped lines, want 3", len(receipt.Skipped))
	}
	// 2*12.5 + 2*35 = 95
	if !receipt.Total.Equal(M(95, "sh")) {
		t.Errorf("transaction total = %s, want sh95.00", receipt.Total)
	}

	var nferr *NotFoundError
	if !errors.As(receipt.Skipped[0].Err, &nferr) {
		t.Errorf("first skipped line error = %v, want a NotFoundError", receipt.Skipped[0].Err)
	}

	rice, _ := l.Get(1)
	soap, _ := l.Get(2)
	if !rice.Quantity.Equal(Q(8)) || !soap.Quantity.Equal(Q(2)) {
		t.Errorf("stock after sale = rice %s soap %s, want 8 and 2", rice.Quantity, soap.Quantity)
	}
}

func TestLedger_TotalValue(t *testing.T) {
	l := newTestLedger(t,
		Product{Name: "rice", Quantity: Q(10), Unit: "kg", UnitPrice: M(12.5, "sh")},
		Product{Name: "soap", Quantity: Q(4), Unit: "pieces", UnitPrice: M(35, "sh")},
	)

	// 10*12.5 + 4*35 = 265
	if got := l.TotalValue(); !got.Equal(M(265, "sh")) {
		t.Errorf("TotalValue() = %s, want sh265.00", got)
	}
}
