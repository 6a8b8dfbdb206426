package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jimmyu2foru18/Music-Website/internal/auth"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

func newTestCallback(t *testing.T) (*CallbackHandler, *auth.Manager, *BasicRouter) {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	creds := auth.NewManager(st, "client-id", "http://127.0.0.1:3000", shared.NewLogger(io.Discard))
	handler := NewCallbackHandler(creds)

	router := NewBasicRouter()
	router.Handler(handler)
	return handler, creds, router
}

func TestCallbackRelayPage(t *testing.T) {
	_, _, router := newTestCallback(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "location.hash") {
		t.Error("expected the page to read the URL fragment")
	}
	if !strings.Contains(body, "/token?") {
		t.Error("expected the page to forward to the token endpoint")
	}
}

func TestCallbackToken(t *testing.T) {
	t.Run("stores the relayed credential", func(t *testing.T) {
		handler, creds, router := newTestCallback(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/token?access_token=tok&token_type=Bearer&expires_in=3600", nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() != nil {
			t.Fatalf("expected success, got %v", result.Error())
		}
		if !creds.Connected() {
			t.Error("expected the credential to be stored")
		}
	})

	t.Run("surfaces a refused authorization", func(t *testing.T) {
		handler, creds, router := newTestCallback(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/token?error=access_denied", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil {
			t.Error("expected an error result")
		}
		if creds.Connected() {
			t.Error("expected no stored credential")
		}
	})

	t.Run("second delivery is rejected", func(t *testing.T) {
		_, _, router := newTestCallback(t)

		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/token?access_token=tok&expires_in=3600", nil))
		if first.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", first.Code)
		}

		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/token?access_token=other&expires_in=3600", nil))
		if second.Code != http.StatusBadRequest {
			t.Errorf("expected 400 on replay, got %d", second.Code)
		}
	})
}

func TestRouterMiddleware(t *testing.T) {
	router := NewBasicRouter()

	var order []string
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "first")
			next.ServeHTTP(w, r)
		})
	})
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "second")
			next.ServeHTTP(w, r)
		})
	})

	router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "handler" {
		t.Errorf("unexpected middleware order: %v", order)
	}

	t.Run("method filtering", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}
