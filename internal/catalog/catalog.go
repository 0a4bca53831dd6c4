package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fruit-order/api/internal/enum"
	"github.com/shopspring/decimal"
)

// Errors returned when building a catalog.
var (
	ErrNoItems          = errors.New("catalog has no items")
	ErrInvalidItemID    = errors.New("item id must be > 0")
	ErrDuplicateItemID  = errors.New("duplicate item id")
	ErrMissingItemName  = errors.New("item name is required")
	ErrInvalidUnit      = errors.New("invalid unit")
	ErrInvalidUnitPrice = errors.New("unit_price must be > 0")
)

var (
	stepKilogram = decimal.NewFromFloat(0.5)
	stepPiece    = decimal.NewFromInt(1)
)

// Item is a single sellable catalog entry. Items are immutable once the
// catalog is built.
type Item struct {
	ID        int
	Name      string
	Unit      string
	UnitPrice decimal.Decimal
	Glyph     string
}

// Step is the increment offered by the quantity input for this item.
func (it Item) Step() decimal.Decimal {
	if it.Unit == enum.UnitKilogram {
		return stepKilogram
	}
	return stepPiece
}

// UnitLabel is the short unit shown next to quantities and prices.
func (it Item) UnitLabel() string {
	return UnitLabel(it.Unit)
}

// UnitLabel maps a unit enum to its display label.
func UnitLabel(unit string) string {
	switch unit {
	case enum.UnitKilogram:
		return "kg"
	case enum.UnitPiece:
		return "pièce"
	}
	return unit
}

// Catalog is a read-only, id-indexed list of items.
type Catalog struct {
	items []Item
	byID  map[int]int
}

// New validates items and builds a catalog sorted by id.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]int, len(sorted))
	for i, it := range sorted {
		if it.ID <= 0 {
			return nil, fmt.Errorf("item %q: %w", it.Name, ErrInvalidItemID)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("item[%d]: %w", it.ID, ErrDuplicateItemID)
		}
		if it.Name == "" {
			return nil, fmt.Errorf("item[%d]: %w", it.ID, ErrMissingItemName)
		}
		if !isValidUnit(it.Unit) {
			return nil, fmt.Errorf("item[%d]: %w %q", it.ID, ErrInvalidUnit, it.Unit)
		}
		if !it.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("item[%d]: %w", it.ID, ErrInvalidUnitPrice)
		}
		byID[it.ID] = i
	}

	return &Catalog{items: sorted, byID: byID}, nil
}

// Items returns a copy of the catalog entries in id order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an item by id.
func (c *Catalog) Get(id int) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Len reports the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

func isValidUnit(s string) bool {
	switch s {
	case enum.UnitKilogram, enum.UnitPiece:
		return true
	}
	return false
}
