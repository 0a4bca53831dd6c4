package handler_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/fruit-order/api/internal/enum"
	"github.com/fruit-order/api/internal/handler"
	"github.com/fruit-order/api/internal/service"
	"github.com/fruit-order/api/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func setupSessionRouter(id uuid.UUID, ctrl *session.Controller) *chi.Mux {
	h := handler.NewSessionHandler()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(withSession(id, ctrl))
		h.RegisterRoutes(r)
	})
	return r
}

func TestSessionGet_Initial(t *testing.T) {
	id, ctrl := newTestSession()
	router := setupSessionRouter(id, ctrl)

	rr := doRequest(t, router, "GET", "/api/session", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	resp := decodeResponse(t, rr)
	if resp["view"] != enum.ViewCustomer {
		t.Errorf("view: got %v, want %s", resp["view"], enum.ViewCustomer)
	}
	if resp["order_count"] != float64(0) {
		t.Errorf("order_count: got %v", resp["order_count"])
	}
}

func TestSetQuantity_StoresRawString(t *testing.T) {
	id, ctrl := newTestSession()
	router := setupSessionRouter(id, ctrl)

	rr := doRequest(t, router, "PUT", "/api/draft/2", map[string]interface{}{"quantity": "abc"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := ctrl.Quantity(2); got != "abc" {
		t.Errorf("draft[2]: got %q, want %q", got, "abc")
	}
}

func TestSetQuantity_AcceptsNumber(t *testing.T) {
	id, ctrl := newTestSession()
	router := setupSessionRouter(id, ctrl)

	rr := doRequest(t, router, "PUT", "/api/draft/1", map[string]interface{}{"quantity": 2.5})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if got := ctrl.Quantity(1); got != "2.5" {
		t.Errorf("draft[1]: got %q, want %q", got, "2.5")
	}
}

func TestSetQuantity_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"bad item id", "/api/draft/pommes", map[string]string{"quantity": "1"}, http.StatusBadRequest},
		{"bool quantity", "/api/draft/1", map[string]bool{"quantity": true}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ctrl := newTestSession()
			router := setupSessionRouter(id, ctrl)

			rr := doRequest(t, router, "PUT", tt.path, tt.body)
			if rr.Code != tt.want {
				t.Fatalf("status: got %d, want %d; body: %s", rr.Code, tt.want, rr.Body.String())
			}
			if len(ctrl.Snapshot().Draft) != 0 {
				t.Error("draft changed on error")
			}
		})
	}
}

func TestSetQuantity_UnknownItemIsStored(t *testing.T) {
	id, ctrl := newTestSession()
	router := setupSessionRouter(id, ctrl)

	rr := doRequest(t, router, "PUT", "/api/draft/99", map[string]string{"quantity": "4"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := ctrl.Quantity(99); got != "4" {
		t.Errorf("draft[99]: got %q, want %q", got, "4")
	}

	ctrl.SetCustomer("Alice", "555-0100")
	if _, err := ctrl.Submit(); !errors.Is(err, service.ErrEmptyOrder) {
		t.Fatalf("submit: expected ErrEmptyOrder, got %v", err)
	}
}

func TestSetQuantity_InvalidBody(t *testing.T) {
	id, ctrl := newTestSession()
	router := setupSessionRouter(id, ctrl)

	req, _ := http.NewRequest("PUT", "/api/draft/1", strings.NewReader("{"))
	rr := doRaw(router, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestSetCustomer(t *testing.T) {
	id, ctrl := newTestSession()
	router := setupSessionRouter(id, ctrl)

	rr := doRequest(t, router, "PUT", "/api/customer", map[string]string{"name": "Alice", "phone": "555-0100"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	snap := ctrl.Snapshot()
	if snap.CustomerName != "Alice" || snap.CustomerPhone != "555-0100" {
		t.Errorf("customer: got %q / %q", snap.CustomerName, snap.CustomerPhone)
	}
}

func TestToggleView(t *testing.T) {
	id, ctrl := newTestSession()
	router := setupSessionRouter(id, ctrl)

	rr := doRequest(t, router, "POST", "/api/view/toggle", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if resp := decodeResponse(t, rr); resp["view"] != enum.ViewAdmin {
		t.Errorf("view: got %v, want %s", resp["view"], enum.ViewAdmin)
	}

	rr = doRequest(t, router, "POST", "/api/view/toggle", nil)
	if resp := decodeResponse(t, rr); resp["view"] != enum.ViewCustomer {
		t.Errorf("view: got %v, want %s", resp["view"], enum.ViewCustomer)
	}
}

func TestSessionRoutes_WithoutSession(t *testing.T) {
	h := handler.NewSessionHandler()
	r := chi.NewRouter()
	r.Route("/api", h.RegisterRoutes)

	rr := doRequest(t, r, "GET", "/api/session", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
