package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/fruit-order/api/internal/metrics"
	"github.com/fruit-order/api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderHandler handles order endpoints for the caller's session.
type OrderHandler struct {
	catalog *catalog.Catalog
	submit  submitter
}

// NewOrderHandler creates a new OrderHandler. hub and m may be nil.
func NewOrderHandler(cat *catalog.Catalog, hub Broadcaster, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{catalog: cat, submit: submitter{hub: hub, metrics: m}}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted at /api/orders behind middleware.Session.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/totals", h.Totals)
}

// --- Response types ---

type orderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Status        string              `json:"status"`
	Total         string              `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []orderLineResponse `json:"items"`
}

type orderLineResponse struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Glyph     string `json:"glyph"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Amount    string `json:"amount"`
}

type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
}

type totalRowResponse struct {
	ItemID        int    `json:"item_id"`
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	Glyph         string `json:"glyph"`
	Quantity      string `json:"quantity"`
	EstimatedCost string `json:"estimated_cost"`
}

type totalsResponse struct {
	Items      []totalRowResponse `json:"items"`
	GrandTotal string             `json:"grand_total"`
}

// --- Handlers ---

// Create handles POST /api/orders. It submits whatever the session's draft
// and customer fields currently hold.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctrl := sessionOrFail(w, r)
	if ctrl == nil {
		return
	}

	order, err := h.submit.submit(r.Context(), ctrl)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("ERROR: submit order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctrl := sessionOrFail(w, r)
	if ctrl == nil {
		return
	}

	orders := ctrl.Orders()
	resp := make([]orderResponse, len(orders))
	for i := range orders {
		resp[i] = toOrderResponse(&orders[i])
	}
	writeJSON(w, http.StatusOK, orderListResponse{Orders: resp})
}

// Totals handles GET /api/orders/totals.
func (h *OrderHandler) Totals(w http.ResponseWriter, r *http.Request) {
	ctrl := sessionOrFail(w, r)
	if ctrl == nil {
		return
	}

	orders := ctrl.Orders()
	rows := service.TotalRows(orders, h.catalog)
	resp := totalsResponse{
		Items:      make([]totalRowResponse, len(rows)),
		GrandTotal: service.GrandTotal(orders).StringFixed(2),
	}
	for i, row := range rows {
		resp.Items[i] = totalRowResponse{
			ItemID:        row.Item.ID,
			Name:          row.Item.Name,
			Unit:          row.Item.Unit,
			Glyph:         row.Item.Glyph,
			Quantity:      row.Quantity.String(),
			EstimatedCost: row.EstimatedCost.StringFixed(2),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- Helpers ---

func toOrderResponse(o *service.Order) orderResponse {
	items := make([]orderLineResponse, len(o.Items))
	for i, l := range o.Items {
		items[i] = orderLineResponse{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			Unit:      l.Item.Unit,
			Glyph:     l.Item.Glyph,
			Quantity:  l.Quantity.String(),
			UnitPrice: l.Item.UnitPrice.StringFixed(2),
			Amount:    l.Amount().StringFixed(2),
		}
	}
	return orderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        o.Status,
		Total:         o.Total().StringFixed(2),
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}
}
