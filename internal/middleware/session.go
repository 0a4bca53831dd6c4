package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/fruit-order/api/internal/auth"
	"github.com/fruit-order/api/internal/session"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "fruit_session"

type contextKey string

const (
	sessionIDKey  contextKey = "session_id"
	controllerKey contextKey = "session"
)

// SessionStore resolves session ids to controllers.
// Satisfied by *session.Registry.
type SessionStore interface {
	Get(id uuid.UUID) *session.Controller
}

// Session attaches the caller's session controller to the request context.
// A missing, expired or tampered cookie starts a fresh session.
func Session(secret string, store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := sessionFromCookie(secret, r)
			if !ok {
				sessionID = uuid.New()
				token, err := auth.GenerateSessionToken(secret, sessionID)
				if err != nil {
					log.Printf("ERROR: generate session token: %v", err)
					writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(auth.SessionTTL.Seconds()),
					HttpOnly: true,
					Secure:   r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			ctx = context.WithValue(ctx, controllerKey, store.Get(sessionID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromCookie(secret string, r *http.Request) (uuid.UUID, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return uuid.Nil, false
	}
	claims, err := auth.ValidateSessionToken(secret, c.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return claims.SessionID, true
}

// SessionFromContext returns the controller attached by Session, or nil.
func SessionFromContext(ctx context.Context) *session.Controller {
	ctrl, _ := ctx.Value(controllerKey).(*session.Controller)
	return ctrl
}

// SessionIDFromContext returns the session id attached by Session.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	return id, ok
}

// WithSession attaches a controller without going through the cookie flow.
// Used by handler tests.
func WithSession(ctx context.Context, id uuid.UUID, ctrl *session.Controller) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, id)
	return context.WithValue(ctx, controllerKey, ctrl)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
