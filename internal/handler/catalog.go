package handler

import (
	"net/http"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the read-only catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// RegisterRoutes registers catalog endpoints: /api/catalog
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

type catalogItemResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	UnitLabel string `json:"unit_label"`
	UnitPrice string `json:"unit_price"`
	Glyph     string `json:"glyph"`
	Step      string `json:"step"`
}

// List handles GET /api/catalog.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.Items()
	resp := make([]catalogItemResponse, len(items))
	for i, it := range items {
		resp[i] = toCatalogItemResponse(it)
	}
	writeJSON(w, http.StatusOK, resp)
}

func toCatalogItemResponse(it catalog.Item) catalogItemResponse {
	return catalogItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Unit:      it.Unit,
		UnitLabel: it.UnitLabel(),
		UnitPrice: it.UnitPrice.StringFixed(2),
		Glyph:     it.Glyph,
		Step:      it.Step().String(),
	}
}
