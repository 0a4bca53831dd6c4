package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// SessionHandler exposes the draft, customer fields and view switch of the
// caller's session.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// RegisterRoutes registers session endpoints. Expected to be mounted at /api
// behind middleware.Session.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/session", h.Get)
	r.Put("/draft/{itemID}", h.SetQuantity)
	r.Put("/customer", h.SetCustomer)
	r.Post("/view/toggle", h.ToggleView)
}

// --- Request / Response types ---

type sessionResponse struct {
	View          string         `json:"view"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	Draft         map[int]string `json:"draft"`
	OrderCount    int            `json:"order_count"`
}

type setQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

type setCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type viewResponse struct {
	View string `json:"view"`
}

// --- Handlers ---

// Get handles GET /api/session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctrl := sessionOrFail(w, r)
	if ctrl == nil {
		return
	}

	snap := ctrl.Snapshot()
	writeJSON(w, http.StatusOK, sessionResponse{
		View:          snap.View,
		CustomerName:  snap.CustomerName,
		CustomerPhone: snap.CustomerPhone,
		Draft:         snap.Draft,
		OrderCount:    len(snap.Orders),
	})
}

// SetQuantity handles PUT /api/draft/{itemID}.
// The quantity may be a JSON string or number; it is stored as typed. Item
// ids are not checked here: submit skips ids missing from the catalog.
func (h *SessionHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	ctrl := sessionOrFail(w, r)
	if ctrl == nil {
		return
	}

	itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item ID"})
		return
	}
	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	raw, ok := rawQuantity(req.Quantity)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must be a string or number"})
		return
	}

	ctrl.SetQuantity(itemID, raw)
	writeJSON(w, http.StatusOK, map[string]interface{}{"item_id": itemID, "quantity": raw})
}

// SetCustomer handles PUT /api/customer.
func (h *SessionHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	ctrl := sessionOrFail(w, r)
	if ctrl == nil {
		return
	}

	var req setCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ctrl.SetCustomer(req.Name, req.Phone)
	writeJSON(w, http.StatusOK, req)
}

// ToggleView handles POST /api/view/toggle.
func (h *SessionHandler) ToggleView(w http.ResponseWriter, r *http.Request) {
	ctrl := sessionOrFail(w, r)
	if ctrl == nil {
		return
	}
	writeJSON(w, http.StatusOK, viewResponse{View: ctrl.Toggle()})
}

// rawQuantity keeps the value as typed: strings verbatim, numbers in their
// JSON spelling, null as empty.
func rawQuantity(msg json.RawMessage) (string, bool) {
	if len(msg) == 0 || string(msg) == "null" {
		return "", true
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
