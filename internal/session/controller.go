package session

import (
	"sync"
	"time"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/fruit-order/api/internal/enum"
	"github.com/fruit-order/api/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source used to stamp orders.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDGenerator overrides how order ids are generated.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(c *Controller) { c.newID = newID }
}

// Snapshot is a point-in-time copy of a session's state for rendering.
type Snapshot struct {
	View          string
	CustomerName  string
	CustomerPhone string
	Draft         map[int]string
	Orders        []service.Order
}

// Controller owns the draft, customer fields, view mode and order store of
// one browser session. Every method takes the same lock, so operations from
// one session run one at a time and to completion.
type Controller struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() uuid.UUID

	view          string
	customerName  string
	customerPhone string
	draft         map[int]string
	orders        []service.Order
	confirmed     *service.Order
}

// NewController creates an empty session in the customer view.
func NewController(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: cat,
		now:     time.Now,
		newID:   uuid.New,
		view:    enum.ViewCustomer,
		draft:   make(map[int]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the catalog orders are validated against.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// SetQuantity records raw exactly as typed. Validation happens on Submit.
func (c *Controller) SetQuantity(itemID int, raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft[itemID] = raw
}

// Quantity returns the raw draft value for itemID, or "".
func (c *Controller) Quantity(itemID int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft[itemID]
}

// SetCustomer records the customer fields exactly as typed.
func (c *Controller) SetCustomer(name, phone string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerName = name
	c.customerPhone = phone
}

// Capture applies a whole form post (customer fields plus quantities) as a
// single update.
func (c *Controller) Capture(name, phone string, quantities map[int]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerName = name
	c.customerPhone = phone
	for id, raw := range quantities {
		c.draft[id] = raw
	}
}

// Submit turns the current draft into an order and appends it to the store.
// On success the draft and customer fields are cleared. On a validation
// error nothing changes.
func (c *Controller) Submit() (*service.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, err := service.BuildOrder(c.catalog, service.SubmitRequest{
		CustomerName:  c.customerName,
		CustomerPhone: c.customerPhone,
		Draft:         c.draft,
	}, c.newID(), c.now())
	if err != nil {
		return nil, err
	}

	c.orders = append(c.orders, *order)
	c.draft = make(map[int]string)
	c.customerName = ""
	c.customerPhone = ""
	return order, nil
}

// Confirm records an order for a one-shot success message on the next
// customer page.
func (c *Controller) Confirm(order *service.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmed = order
}

// TakeConfirmation returns the order passed to Confirm once, for a one-shot
// success message.
func (c *Controller) TakeConfirmation() (*service.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o := c.confirmed
	c.confirmed = nil
	return o, o != nil
}

// Toggle flips between the customer and admin views and returns the new one.
func (c *Controller) Toggle() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.view == enum.ViewAdmin {
		c.view = enum.ViewCustomer
	} else {
		c.view = enum.ViewAdmin
	}
	return c.view
}

// View returns the current view mode.
func (c *Controller) View() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Orders returns a copy of the order store.
func (c *Controller) Orders() []service.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ordersLocked()
}

// Totals aggregates the order store per item.
func (c *Controller) Totals() map[int]decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return service.TotalsByItem(c.orders)
}

// Snapshot copies the full session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft := make(map[int]string, len(c.draft))
	for id, raw := range c.draft {
		draft[id] = raw
	}
	return Snapshot{
		View:          c.view,
		CustomerName:  c.customerName,
		CustomerPhone: c.customerPhone,
		Draft:         draft,
		Orders:        c.ordersLocked(),
	}
}

func (c *Controller) ordersLocked() []service.Order {
	out := make([]service.Order, len(c.orders))
	copy(out, c.orders)
	return out
}
