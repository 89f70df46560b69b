package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dockmaster/internal/domain/fixtures"

	"github.com/gin-gonic/gin"
)

func TestCatalogHandler_Scenarios(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler()

	r := gin.New()
	r.GET("/v1/scenarios", h.ListScenarios)
	r.GET("/v1/scenarios/:scenario_id", h.GetScenario)

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/scenarios", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != len(fixtures.Scenarios) {
			t.Fatalf("expected %d scenarios, got %d", len(fixtures.Scenarios), len(body))
		}
	})

	t.Run("get known", func(t *testing.T) {
		id := fixtures.Scenarios[0].ID
		req := httptest.NewRequest(http.MethodGet, "/v1/scenarios/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != id {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/scenarios/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_Reference(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler()

	r := gin.New()
	r.GET("/v1/customers", h.ListCustomers)
	r.GET("/v1/customers/:customer_id", h.GetCustomer)
	r.GET("/v1/vessels", h.ListVessels)
	r.GET("/v1/vessels/:vessel_id", h.GetVessel)
	r.GET("/v1/parts", h.ListParts)
	r.GET("/v1/diagnostics", h.MatchDiagnostics)

	for _, path := range []string{"/v1/customers", "/v1/vessels", "/v1/parts"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) == 0 {
			t.Fatalf("%s: expected non-empty list, got %s", path, w.Body.String())
		}
	}

	t.Run("get customer by id", func(t *testing.T) {
		id := fixtures.Customers[0].ID
		req := httptest.NewRequest(http.MethodGet, "/v1/customers/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get unknown vessel", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/vessels/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("diagnostics filtered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/diagnostics?vesselType=sailboat&symptom=engine", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
