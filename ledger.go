package grocery

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"time"
)

// Ledger is the in-memory authoritative table of products.
//
// The ledger owns its table exclusively: records are only ever mutated
// through its operations. When bound to a Store, every successful
// mutation is followed by one synchronous full-table save, so the backing
// file always reflects the last successful operation.
type Ledger struct {
	products map[int]Product
	store    *Store // nil for an unbound, in-memory ledger
	currency string
}

// NewLedger creates an empty, unbound ledger. Mutations are kept in
// memory only; tests and callers doing their own persistence use this.
func NewLedger() *Ledger {
	return &Ledger{products: make(map[int]Product)}
}

// Open loads the product table from the store and returns a ledger bound
// to it. A missing backing file yields an empty ledger, not an error.
func Open(store *Store) (*Ledger, error) {
	products, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Ledger{products: products, store: store, currency: store.currency}, nil
}

// Len returns the number of products in the table.
func (l *Ledger) Len() int { return len(l.products) }

// Get returns the product with the given id.
func (l *Ledger) Get(id int) (Product, bool) {
	p, ok := l.products[id]
	return p, ok
}

// Find returns the product whose name matches case-insensitively. Name
// uniqueness is an invariant, but if the table were ever inconsistent the
// lowest id wins.
func (l *Ledger) Find(name string) (Product, bool) {
	id, ok := l.findID(name)
	if !ok {
		return Product{}, false
	}
	return l.products[id], true
}

func (l *Ledger) findID(name string) (int, bool) {
	for _, id := range l.sortedIDs() {
		if equalFold(l.products[id].Name, name) {
			return id, true
		}
	}
	return 0, false
}

// Products iterates over all records in id order.
func (l *Ledger) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, id := range l.sortedIDs() {
			if !yield(l.products[id]) {
				return
			}
		}
	}
}

// TotalValue returns the aggregate stock value, the sum of quantity times
// unit price over the whole table.
func (l *Ledger) TotalValue() Money {
	total := M(0, l.currency)
	for _, p := range l.products {
		total = total.Add(p.Value())
	}
	return total
}

func (l *Ledger) sortedIDs() []int {
	ids := slices.Collect(maps.Keys(l.products))
	slices.Sort(ids)
	return ids
}

// nextID returns the id for a new record: one more than the current
// maximum, or 1 when the table is empty. Ids are never reused within a
// session unless the table empties again.
func (l *Ledger) nextID() int {
	max := 0
	for id := range l.products {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Register validates and inserts a new product, assigns its id, saves,
// and returns the id.
func (l *Ledger) Register(name string, quantity Quantity, unit string, unitPrice Money) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	if _, exists := l.findID(name); exists {
		return 0, &ValidationError{Field: "name", Reason: fmt.Sprintf("product %q already exists in the inventory", name)}
	}
	if err := validateQuantity(quantity); err != nil {
		return 0, err
	}
	if err := validateUnit(unit); err != nil {
		return 0, err
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		return 0, err
	}

	id := l.nextID()
	l.products[id] = Product{ID: id, Name: name, Quantity: quantity, Unit: unit, UnitPrice: unitPrice}
	if err := l.autosave(); err != nil {
		return id, err
	}
	return id, nil
}

// Update changes the provided fields of an existing product. Every
// provided field is validated before any of them is applied, so a late
// validation failure leaves the record untouched.
func (l *Ledger) Update(id int, upd ProductUpdate) error {
	p, ok := l.products[id]
	if !ok {
		return &NotFoundError{ID: id}
	}

	if upd.Name != nil {
		if err := validateName(*upd.Name); err != nil {
			return err
		}
		if other, exists := l.findID(*upd.Name); exists && other != id {
			return &ValidationError{Field: "name", Reason: fmt.Sprintf("product %q already exists in the inventory", *upd.Name)}
		}
	}
	if upd.Quantity != nil {
		if err := validateQuantity(*upd.Quantity); err != nil {
			return err
		}
	}
	if upd.Unit != nil {
		if err := validateUnit(*upd.Unit); err != nil {
			return err
		}
	}
	if upd.UnitPrice != nil {
		if err := validateUnitPrice(*upd.UnitPrice); err != nil {
			return err
		}
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Quantity != nil {
		p.Quantity = *upd.Quantity
	}
	if upd.Unit != nil {
		p.Unit = *upd.Unit
	}
	if upd.UnitPrice != nil {
		p.UnitPrice = *upd.UnitPrice
	}
	l.products[id] = p
	return l.autosave()
}

// Delete removes the product matching the name case-insensitively and
// returns the removed record.
func (l *Ledger) Delete(name string) (Product, error) {
	id, ok := l.findID(name)
	if !ok {
		return Product{}, &NotFoundError{Name: name}
	}
	p := l.products[id]
	delete(l.products, id)
	if err := l.autosave(); err != nil {
		return p, err
	}
	return p, nil
}

// Restock adds stock to an existing product and returns the new quantity.
func (l *Ledger) Restock(name string, add Quantity) (Quantity, error) {
	id, ok := l.findID(name)
	if !ok {
		return Quantity{}, &NotFoundError{Name: name}
	}
	if err := validateQuantity(add); err != nil {
		return Quantity{}, err
	}
	p := l.products[id]
	p.Quantity = p.Quantity.Add(add)
	l.products[id] = p
	if err := l.autosave(); err != nil {
		return p.Quantity, err
	}
	return p.Quantity, nil
}

// Search returns all products whose name contains the query,
// case-insensitively, in id order. The result may be empty.
func (l *Ledger) Search(query string) []Product {
	query = strings.ToLower(query)
	var matches []Product
	for p := range l.Products() {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Sell processes a multi-item sale, one line at a time in the given
// order. A line that cannot be fulfilled (unknown product, non-positive
// quantity, insufficient stock) is recorded as skipped with its reason
// and does not abort the transaction. Stock is decremented per sold line
// and the table is saved once at the end, only if at least one line
// succeeded.
func (l *Ledger) Sell(items []LineItem) (*Receipt, error) {
	r := &Receipt{Time: time.Now(), Total: M(0, l.currency)}
	for _, item := range items {
		id, ok := l.findID(item.Name)
		if !ok {
			r.Skipped = append(r.Skipped, SkippedLine{Name: item.Name, Err: &NotFoundError{Name: item.Name}})
			continue
		}
		if !item.Quantity.IsPositive() {
			r.Skipped = append(r.Skipped, SkippedLine{Name: item.Name,
				Err: &ValidationError{Field: "quantity", Reason: "must be a positive number"}})
			continue
		}
		p := l.products[id]
		if item.Quantity.GreaterThan(p.Quantity) {
			r.Skipped = append(r.Skipped, SkippedLine{Name: p.Name,
				Err: &InsufficientStockError{Name: p.Name, Requested: item.Quantity, Available: p.Quantity}})
			continue
		}

		p.Quantity = p.Quantity.Sub(item.Quantity)
		l.products[id] = p

		lineTotal := p.UnitPrice.Mul(item.Quantity)
		r.Lines = append(r.Lines, ReceiptLine{
			Name:      p.Name,
			Quantity:  item.Quantity,
			Unit:      p.Unit,
			UnitPrice: p.UnitPrice,
			LineTotal: lineTotal,
		})
		r.Total = r.Total.Add(lineTotal)
	}

	if r.Empty() {
		return r, nil
	}
	if err := l.autosave(); err != nil {
		return r, err
	}
	return r, nil
}

func (l *Ledger) autosave() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(l.products); err != nil {
		return fmt.Errorf("could not save inventory: %w", err)
	}
	return nil
}
