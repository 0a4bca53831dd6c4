package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/fruit-order/api/internal/enum"
	"github.com/fruit-order/api/internal/metrics"
	"github.com/fruit-order/api/internal/middleware"
	"github.com/fruit-order/api/internal/service"
	"github.com/fruit-order/api/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// quantityFieldPrefix prefixes the form field of each catalog item: qty_<id>.
const quantityFieldPrefix = "qty_"

// User-facing messages for the two validation failures.
const (
	msgMissingCustomerInfo = "Veuillez saisir votre nom et votre téléphone"
	msgEmptyOrder          = "Veuillez sélectionner au moins un fruit"
)

// PageHandler renders the customer and admin views as HTML.
type PageHandler struct {
	catalog *catalog.Catalog
	tmpl    *template.Template
	submit  submitter
}

// NewPageHandler parses the embedded templates. hub and m may be nil.
func NewPageHandler(cat *catalog.Catalog, hub Broadcaster, m *metrics.Metrics) *PageHandler {
	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
	return &PageHandler{
		catalog: cat,
		tmpl:    tmpl,
		submit:  submitter{hub: hub, metrics: m},
	}
}

// RegisterRoutes registers the page endpoints. Expected to be mounted at the
// root behind middleware.Session.
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/orders", h.SubmitOrder)
	r.Post("/view/toggle", h.ToggleView)
}

// --- View models ---

type pageData struct {
	IsAdmin      bool
	Error        string
	Confirmation *service.Order
	Customer     customerView
	Admin        adminView
}

type customerView struct {
	Name  string
	Phone string
	Items []itemInput
}

type itemInput struct {
	Item  catalog.Item
	Value string
}

type adminView struct {
	Totals     []service.TotalRow
	Orders     []service.Order
	GrandTotal decimal.Decimal
}

// --- Handlers ---

// Index handles GET /. Renders whichever view the session has selected.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.SessionFromContext(r.Context())
	if ctrl == nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	data := h.buildPage(ctrl.Snapshot())
	if !data.IsAdmin {
		if confirmed, ok := ctrl.TakeConfirmation(); ok {
			data.Confirmation = confirmed
		}
	}
	h.render(w, http.StatusOK, data)
}

// SubmitOrder handles POST /orders. The form carries the customer fields and
// one qty_<id> field per catalog item.
func (h *PageHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.SessionFromContext(r.Context())
	if ctrl == nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	ctrl.Capture(
		r.PostForm.Get("customer_name"),
		r.PostForm.Get("customer_phone"),
		h.quantitiesFromForm(r),
	)

	order, err := h.submit.submit(r.Context(), ctrl)
	if err != nil {
		msg, ok := validationMessage(err)
		if !ok {
			log.Printf("ERROR: submit order: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		data := h.buildPage(ctrl.Snapshot())
		data.Error = msg
		h.render(w, http.StatusUnprocessableEntity, data)
		return
	}

	ctrl.Confirm(order)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ToggleView handles POST /view/toggle.
func (h *PageHandler) ToggleView(w http.ResponseWriter, r *http.Request) {
	ctrl := middleware.SessionFromContext(r.Context())
	if ctrl == nil {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	ctrl.Toggle()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// --- Helpers ---

// quantitiesFromForm collects qty_<id> fields for ids present in the catalog.
func (h *PageHandler) quantitiesFromForm(r *http.Request) map[int]string {
	quantities := make(map[int]string)
	for key, values := range r.PostForm {
		if !strings.HasPrefix(key, quantityFieldPrefix) || len(values) == 0 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimPrefix(key, quantityFieldPrefix))
		if err != nil {
			continue
		}
		if _, ok := h.catalog.Get(id); !ok {
			continue
		}
		quantities[id] = values[0]
	}
	return quantities
}

func (h *PageHandler) buildPage(snap session.Snapshot) pageData {
	data := pageData{IsAdmin: snap.View == enum.ViewAdmin}

	if data.IsAdmin {
		data.Admin = adminView{
			Totals:     service.TotalRows(snap.Orders, h.catalog),
			Orders:     snap.Orders,
			GrandTotal: service.GrandTotal(snap.Orders),
		}
		return data
	}

	items := h.catalog.Items()
	inputs := make([]itemInput, len(items))
	for i, it := range items {
		inputs[i] = itemInput{Item: it, Value: snap.Draft[it.ID]}
	}
	data.Customer = customerView{
		Name:  snap.CustomerName,
		Phone: snap.CustomerPhone,
		Items: inputs,
	}
	return data
}

func (h *PageHandler) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("ERROR: render page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("ERROR: write page: %v", err)
	}
}

func validationMessage(err error) (string, bool) {
	switch validationReason(err) {
	case "missing_customer_info":
		return msgMissingCustomerInfo, true
	case "empty_order":
		return msgEmptyOrder, true
	}
	return "", false
}
