package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dockmaster/internal/adapter/http/handlers/mocks"
	"dockmaster/internal/domain/entities"
	"dockmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestScopeHandler_GenerateScope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScopeUseCase(ctrl)
		h := NewScopeHandler(uc)

		r := gin.New()
		r.POST("/v1/scope", h.GenerateScope)

		req := httptest.NewRequest(http.MethodPost, "/v1/scope", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScopeUseCase(ctrl)
		h := NewScopeHandler(uc)

		r := gin.New()
		r.POST("/v1/scope", h.GenerateScope)

		uc.EXPECT().GenerateScope(gomock.Any(), "   ").Return(entities.Scenario{}, usecase.ErrMissingPrompt)

		req := httptest.NewRequest(http.MethodPost, "/v1/scope", bytes.NewBufferString(`{"prompt":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScopeUseCase(ctrl)
		h := NewScopeHandler(uc)

		r := gin.New()
		r.POST("/v1/scope", h.GenerateScope)

		uc.EXPECT().GenerateScope(gomock.Any(), "winterize my boat").Return(entities.Scenario{}, usecase.ErrScopeNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/scope", bytes.NewBufferString(`{"prompt":"winterize my boat"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScopeUseCase(ctrl)
		h := NewScopeHandler(uc)

		r := gin.New()
		r.POST("/v1/scope", h.GenerateScope)

		uc.EXPECT().GenerateScope(gomock.Any(), "winterize my boat").Return(entities.Scenario{}, usecase.ErrScopeUpstream)

		req := httptest.NewRequest(http.MethodPost, "/v1/scope", bytes.NewBufferString(`{"prompt":"winterize my boat"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScopeUseCase(ctrl)
		h := NewScopeHandler(uc)

		r := gin.New()
		r.POST("/v1/scope", h.GenerateScope)

		uc.EXPECT().GenerateScope(gomock.Any(), "winterize my boat").Return(entities.Scenario{ID: "winterization", Title: "Winterization Package"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/scope", bytes.NewBufferString(`{"prompt":"winterize my boat"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "winterization" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestScopeHandler_StreamNarrative(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScopeUseCase(ctrl)
		h := NewScopeHandler(uc)

		r := gin.New()
		r.POST("/v1/scope/stream", h.StreamNarrative)

		uc.EXPECT().StreamNarrative(gomock.Any(), "engine overheating").Return(nil, usecase.ErrScopeUpstream)

		req := httptest.NewRequest(http.MethodPost, "/v1/scope/stream", bytes.NewBufferString(`{"prompt":"engine overheating"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success streams text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIScopeUseCase(ctrl)
		h := NewScopeHandler(uc)

		r := gin.New()
		r.POST("/v1/scope/stream", h.StreamNarrative)

		narrative := "Looking at this request, the vessel needs an impeller swap."
		uc.EXPECT().StreamNarrative(gomock.Any(), "engine overheating").Return(io.NopCloser(strings.NewReader(narrative)), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/scope/stream", bytes.NewBufferString(`{"prompt":"engine overheating"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
			t.Fatalf("unexpected content type: %s", got)
		}
		if w.Body.String() != narrative {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
