package handlers

import (
	"encoding/json"
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

func TestWorkOrderHandler_GetWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		docs := mocks.NewMockIDocumentsUseCase(ctrl)
		h := NewWorkOrderHandler(uc, docs)

		r := gin.New()
		r.GET("/v1/workorders/:work_order_id", h.GetWorkOrder)

		uc.EXPECT().GetByID(gomock.Any(), "WO-2026-9999").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/workorders/WO-2026-9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		docs := mocks.NewMockIDocumentsUseCase(ctrl)
		h := NewWorkOrderHandler(uc, docs)

		r := gin.New()
		r.GET("/v1/workorders/:work_order_id", h.GetWorkOrder)

		uc.EXPECT().GetByID(gomock.Any(), "WO-2026-0142").Return(entities.WorkOrder{ID: "WO-2026-0142", Status: entities.WorkOrderStatusPending, Total: 2506.64}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/workorders/WO-2026-0142", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "WO-2026-0142" || body["total"] != 2506.64 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		docs := mocks.NewMockIDocumentsUseCase(ctrl)
		h := NewWorkOrderHandler(uc, docs)

		r := gin.New()
		r.PATCH("/v1/workorders/:work_order_id/approve", h.ApproveWorkOrder)

		uc.EXPECT().ApproveByID(gomock.Any(), "WO-2026-0142").Return(entities.WorkOrder{ID: "WO-2026-0142", Status: entities.WorkOrderStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/WO-2026-0142/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("reject not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		docs := mocks.NewMockIDocumentsUseCase(ctrl)
		h := NewWorkOrderHandler(uc, docs)

		r := gin.New()
		r.PATCH("/v1/workorders/:work_order_id/reject", h.RejectWorkOrder)

		uc.EXPECT().RejectByID(gomock.Any(), "WO-2026-9999").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/WO-2026-9999/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("cancel invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		docs := mocks.NewMockIDocumentsUseCase(ctrl)
		h := NewWorkOrderHandler(uc, docs)

		r := gin.New()
		r.PATCH("/v1/workorders/:work_order_id/cancel", h.CancelWorkOrder)

		uc.EXPECT().CancelByID(gomock.Any(), "   ").Return(entities.WorkOrder{}, usecase.ErrInvalidWorkOrderID)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/%20%20%20/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_EstimatePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		docs := mocks.NewMockIDocumentsUseCase(ctrl)
		h := NewWorkOrderHandler(uc, docs)

		r := gin.New()
		r.GET("/v1/workorders/:work_order_id/estimate.pdf", h.EstimatePDF)

		docs.EXPECT().EstimatePDF(gomock.Any(), "WO-2026-9999").Return(nil, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/workorders/WO-2026-9999/estimate.pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		docs := mocks.NewMockIDocumentsUseCase(ctrl)
		h := NewWorkOrderHandler(uc, docs)

		r := gin.New()
		r.GET("/v1/workorders/:work_order_id/estimate.pdf", h.EstimatePDF)

		docs.EXPECT().EstimatePDF(gomock.Any(), "WO-2026-0142").Return([]byte("%PDF-1.3"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/workorders/WO-2026-0142/estimate.pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type: %s", got)
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "WO-2026-0142-estimate.pdf") {
			t.Fatalf("unexpected disposition: %s", w.Header().Get("Content-Disposition"))
		}
		if !strings.HasPrefix(w.Body.String(), "%PDF") {
			t.Fatalf("expected pdf body, got %q", w.Body.String())
		}
	})
}
