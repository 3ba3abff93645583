package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-assistant/config"
	"hotel-assistant/controllers"
	"hotel-assistant/middleware"
	"hotel-assistant/services"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := services.NewMemoryStore(config.SampleRoomTypes(), config.SampleReservations())
	qc := controllers.NewQueryController(services.NewQueryResolver(store, services.ResolverOptions{}), time.Second)
	rc := controllers.NewRecordsController(store, time.Second)
	return SetupRouter(qc, rc, []string{"http://frontend.test"})
}

func TestHealthAndRequestID(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get(middleware.RequestIDHeader); got != "req-42" {
		t.Fatalf("expected the request id to be echoed, got %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}
}

func TestRoutesAreRegistered(t *testing.T) {
	r := testRouter()
	paths := []string{
		"/api/availability?roomType=Suite&start=2025-12-20&end=2025-12-22",
		"/api/occupancy?start=2025-12-20&end=2025-12-22",
		"/api/revenue?start=2025-12-01&end=2026-01-01",
		"/api/popularity?start=2025-12-01&end=2026-01-01&topN=2",
		"/api/high-demand",
		"/api/guests/lookup?guest=Mario%20Rossi",
		"/api/room-types",
		"/api/reservations",
		"/api/reservations/audit",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d: %s", path, w.Code, w.Body.String())
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/query", nil)
	req.Header.Set("Origin", "http://frontend.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://frontend.test" {
		t.Fatalf("expected the origin to be allowed, got %q", got)
	}
}
