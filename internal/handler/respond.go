package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fruit-order/api/internal/middleware"
	"github.com/fruit-order/api/internal/service"
	"github.com/fruit-order/api/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// sessionOrFail returns the request's session controller, writing a 401 if
// the session middleware did not run.
func sessionOrFail(w http.ResponseWriter, r *http.Request) *session.Controller {
	ctrl := middleware.SessionFromContext(r.Context())
	if ctrl == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no session"})
	}
	return ctrl
}

// isValidationError checks if the error is a known validation error
// from the service layer that should result in 400 Bad Request.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrMissingCustomerInfo) ||
		errors.Is(err, service.ErrEmptyOrder)
}

// validationReason is the metrics label for a validation error.
func validationReason(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingCustomerInfo):
		return "missing_customer_info"
	case errors.Is(err, service.ErrEmptyOrder):
		return "empty_order"
	}
	return ""
}
