package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

var setupOnce sync.Once

func setupRouter(t *testing.T) {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		setMiddlewares()
		getRoutes()
	})
}

func TestWrongMethodAnswers405WithAllowHeader(t *testing.T) {
	setupRouter(t)

	cases := []struct {
		method string
		path   string
		allow  string
	}{
		{http.MethodGet, "/api/create-payment", "POST"},
		{http.MethodPost, "/api/get-payment-status", "GET"},
		{http.MethodGet, "/api/webhook", "POST"},
		{http.MethodPost, "/api/certificates", "GET"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", w.Code)
			}
			if got := w.Header().Get("Allow"); !strings.Contains(got, tc.allow) {
				t.Fatalf("expected Allow to contain %s, got %q", tc.allow, got)
			}
		})
	}
}

func TestUnknownPathStays404(t *testing.T) {
	setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/no-such-route", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPreflightStillShortCircuits(t *testing.T) {
	setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/create-payment", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("CORS headers missing")
	}
}
