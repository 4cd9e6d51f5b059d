package grocery

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/gocarina/gocsv"
)

// csvRecord is the on-disk shape of one product row. The field order
// fixes the column order of the backing file.
type csvRecord struct {
	ID        int      `csv:"id"`
	Name      string   `csv:"name"`
	Quantity  Quantity `csv:"quantity"`
	Unit      string   `csv:"unit"`
	UnitPrice Money    `csv:"price-per-unit"`
}

// Store is the persistence collaborator of the ledger: it loads the full
// product table from a flat CSV file and rewrites the whole file on every
// save. The file carries bare amounts; the store's currency is attached
// to prices at load time.
type Store struct {
	path     string
	currency string
}

// NewStore returns a store backed by the CSV file at path. Prices read
// from the file are denominated in the given currency code or symbol.
func NewStore(path, currency string) *Store {
	return &Store{path: path, currency: currency}
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// Load reads the whole product table. A missing file is an empty table,
// not an error. Any malformed row fails the load with a CorruptDataError
// naming the offending row.
func (s *Store) Load() (map[int]Product, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[int]Product), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", s.path, err)
	}
	defer f.Close()

	var records []*csvRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, &CorruptDataError{Row: csvErrorRow(err), Err: err}
	}

	products := make(map[int]Product, len(records))
	for i, rec := range records {
		row := i + 2 // 1-based, counting the header row
		switch {
		case rec.ID <= 0:
			return nil, &CorruptDataError{Row: row, Err: fmt.Errorf("id must be a positive integer, got %d", rec.ID)}
		case rec.Name == "":
			return nil, &CorruptDataError{Row: row, Err: errors.New("name cannot be empty")}
		case rec.Quantity.IsNegative():
			return nil, &CorruptDataError{Row: row, Err: fmt.Errorf("quantity cannot be negative, got %s", rec.Quantity)}
		case !rec.UnitPrice.IsPositive():
			return nil, &CorruptDataError{Row: row, Err: errors.New("price-per-unit must be a positive number")}
		}
		if _, dup := products[rec.ID]; dup {
			return nil, &CorruptDataError{Row: row, Err: fmt.Errorf("duplicate id %d", rec.ID)}
		}
		products[rec.ID] = Product{
			ID:        rec.ID,
			Name:      rec.Name,
			Quantity:  rec.Quantity,
			Unit:      rec.Unit,
			UnitPrice: M(rec.UnitPrice.value, s.currency),
		}
	}
	return products, nil
}

// Save serializes the entire table, sorted by id, and atomically replaces
// the backing file: a concurrent or subsequent Load never observes a
// partial table.
func (s *Store) Save(products map[int]Product) error {
	records := make([]*csvRecord, 0, len(products))
	for _, p := range products {
		records = append(records, &csvRecord{
			ID:        p.ID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Unit:      p.Unit,
			UnitPrice: p.UnitPrice,
		})
	}
	slices.SortFunc(records, func(a, b *csvRecord) int { return a.ID - b.ID })

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for inventory file %q: %w", s.path, err)
	}
	tmp, err := os.CreateTemp(dir, ".inventory-*.csv")
	if err != nil {
		return fmt.Errorf("could not create temporary inventory file: %w", err)
	}
	if err := gocsv.Marshal(&records, tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write inventory file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write inventory file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace inventory file %q: %w", s.path, err)
	}
	return nil
}

// csvErrorRow extracts the offending line from a CSV parse error, or 0
// when the failure cannot be pinned to a single row.
func csvErrorRow(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
