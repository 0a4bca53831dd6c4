package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/fruit-order/api/internal/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by order submission.
var (
	ErrMissingCustomerInfo = errors.New("customer name and phone are required")
	ErrEmptyOrder          = errors.New("select at least one item")
)

// SubmitRequest is the raw form state captured for one submission.
type SubmitRequest struct {
	CustomerName  string
	CustomerPhone string
	Draft         map[int]string // item id -> quantity exactly as typed
}

// OrderLine is one catalog item and the quantity ordered.
type OrderLine struct {
	Item     catalog.Item
	Quantity decimal.Decimal
}

// Amount is quantity * unit price.
func (l OrderLine) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.Item.UnitPrice)
}

// Order is a finalized submission. Orders are never mutated after creation.
type Order struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	Items         []OrderLine
	CreatedAt     time.Time
	Status        string
}

// Total sums the line amounts.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Items {
		total = total.Add(l.Amount())
	}
	return total
}

// BuildOrder validates req against cat and builds a pending order.
//
// Checks run in order: customer info first, then at least one usable line.
// Draft values that do not parse, are <= 0, or name an item missing from the
// catalog are dropped without error.
func BuildOrder(cat *catalog.Catalog, req SubmitRequest, id uuid.UUID, now time.Time) (*Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	if name == "" || phone == "" {
		return nil, ErrMissingCustomerInfo
	}

	itemIDs := make([]int, 0, len(req.Draft))
	for itemID := range req.Draft {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Ints(itemIDs)

	var lines []OrderLine
	for _, itemID := range itemIDs {
		qty, ok := ParseQuantity(req.Draft[itemID])
		if !ok {
			continue
		}
		item, ok := cat.Get(itemID)
		if !ok {
			continue
		}
		lines = append(lines, OrderLine{Item: item, Quantity: qty})
	}

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	return &Order{
		ID:            id,
		CustomerName:  name,
		CustomerPhone: phone,
		Items:         lines,
		CreatedAt:     now,
		Status:        enum.OrderStatusPending,
	}, nil
}

// Accepted quantities: (0, maxQuantity] with at most maxQuantityScale
// fractional digits.
const (
	maxQuantityScale    = 3
	maxQuantityExponent = 4
)

var maxQuantity = decimal.NewFromInt(10000)

// ParseQuantity reads a typed quantity. A lone comma is accepted as the
// decimal separator. Reports false for anything unparseable, <= 0 or out of
// range.
func ParseQuantity(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	// Check the exponent before comparing: Cmp rescales, and "1e30000000"
	// would expand to a 30M digit integer.
	if exp := d.Exponent(); exp < -maxQuantityScale || exp > maxQuantityExponent {
		return decimal.Zero, false
	}
	if d.GreaterThan(maxQuantity) {
		return decimal.Zero, false
	}
	return d, true
}
