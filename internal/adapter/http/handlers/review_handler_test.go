package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dockmaster/internal/adapter/http/handlers/mocks"
	"dockmaster/internal/domain/entities"
	"dockmaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReviewHandler_OpenReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", h.OpenReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown scenario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", h.OpenReview)

		uc.EXPECT().Open(gomock.Any(), "nope").Return(usecase.ReviewState{}, usecase.ErrScenarioNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"scenarioId":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews", h.OpenReview)

		state := usecase.ReviewState{
			ID:         "rev-1",
			ScenarioID: "scenario-1",
			LineItems:  []entities.LineItem{{ID: "li-1", Description: "Annual engine service", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 660, Total: 660}},
			WorkOrder:  entities.WorkOrder{ID: "WO-2026-0142", Subtotal: 660, Tax: 46.2, Total: 706.2},
		}
		uc.EXPECT().Open(gomock.Any(), "scenario-1").Return(state, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews", bytes.NewBufferString(`{"scenarioId":"scenario-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["reviewId"] != "rev-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReviewHandler_UpdateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid category rejected before usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/reviews/:review_id/items/:item_id", h.UpdateItem)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reviews/rev-1/items/li-1", bytes.NewBufferString(`{"category":"discount"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/reviews/:review_id/items/:item_id", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), "rev-1", "li-ghost", gomock.Any()).Return(usecase.ReviewState{}, usecase.ErrLineItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reviews/rev-1/items/li-ghost", bytes.NewBufferString(`{"quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/reviews/:review_id/items/:item_id", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), "rev-1", "li-1", gomock.Any()).Return(usecase.ReviewState{ID: "rev-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/reviews/rev-1/items/li-1", bytes.NewBufferString(`{"quantity":2,"unitPrice":100.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReviewHandler_SessionOperations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.GET("/v1/reviews/:review_id", h.GetReview)

		uc.EXPECT().Get(gomock.Any(), "rev-ghost").Return(usecase.ReviewState{}, usecase.ErrReviewNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews/rev-ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("add item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews/:review_id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "rev-1").Return(usecase.ReviewState{ID: "rev-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews/rev-1/items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.DELETE("/v1/reviews/:review_id/items/:item_id", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "rev-1", "li-2").Return(usecase.ReviewState{ID: "rev-1"}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/reviews/rev-1/items/li-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews/:review_id/reset", h.ResetReview)

		uc.EXPECT().Reset(gomock.Any(), "rev-1").Return(usecase.ReviewState{ID: "rev-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews/rev-1/reset", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReviewHandler_CommitReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews/:review_id/commit", h.CommitReview)

		uc.EXPECT().Commit(gomock.Any(), "rev-1").Return(entities.WorkOrder{}, usecase.ErrWorkOrderAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews/rev-1/commit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/reviews/:review_id/commit", h.CommitReview)

		uc.EXPECT().Commit(gomock.Any(), "rev-1").Return(entities.WorkOrder{ID: "WO-2026-0142", Status: entities.WorkOrderStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reviews/rev-1/commit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "WO-2026-0142" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
