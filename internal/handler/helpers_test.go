package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fruit-order/api/internal/catalog"
	"github.com/fruit-order/api/internal/middleware"
	"github.com/fruit-order/api/internal/session"
	"github.com/fruit-order/api/internal/ws"
	"github.com/google/uuid"
)

// --- Fake hub ---

type sentEvent struct {
	sessionID uuid.UUID
	event     ws.Event
}

type fakeHub struct {
	mu     sync.Mutex
	events []sentEvent
}

func (f *fakeHub) BroadcastToSession(sessionID uuid.UUID, event ws.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, sentEvent{sessionID: sessionID, event: event})
}

func (f *fakeHub) sent() []sentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentEvent(nil), f.events...)
}

// --- Helpers ---

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

func newTestSession() (uuid.UUID, *session.Controller) {
	return uuid.New(), session.NewController(catalog.Default(),
		session.WithClock(func() time.Time { return testNow }))
}

// withSession attaches ctrl to every request, standing in for the cookie
// middleware.
func withSession(id uuid.UUID, ctrl *session.Controller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithSession(r.Context(), id, ctrl)))
		})
	}
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func doRaw(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
