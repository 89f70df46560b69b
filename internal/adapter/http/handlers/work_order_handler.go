package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	response "dockmaster/internal/adapter/http/dto/response"
	"dockmaster/internal/domain/entities"
	"dockmaster/internal/usecase"
	"dockmaster/pkg"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles committed work orders: lookup, the approval
// lifecycle and the printable estimate.

type WorkOrderHandler struct {
	usecase   usecase.IWorkOrderUseCase
	documents usecase.IDocumentsUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, documents usecase.IDocumentsUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, documents: documents}
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	workOrder, err := h.usecase.GetByID(c.Request.Context(), c.Param("work_order_id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(workOrder))
}

func (h *WorkOrderHandler) ApproveWorkOrder(c *gin.Context) {
	h.patchWorkOrderStatus(c, h.usecase.ApproveByID)
}

func (h *WorkOrderHandler) RejectWorkOrder(c *gin.Context) {
	h.patchWorkOrderStatus(c, h.usecase.RejectByID)
}

func (h *WorkOrderHandler) CancelWorkOrder(c *gin.Context) {
	h.patchWorkOrderStatus(c, h.usecase.CancelByID)
}

func (h *WorkOrderHandler) patchWorkOrderStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.WorkOrder, error),
) {
	workOrder, err := updater(c.Request.Context(), c.Param("work_order_id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(workOrder))
}

// EstimatePDF returns the customer-facing estimate as a PDF download.
func (h *WorkOrderHandler) EstimatePDF(c *gin.Context) {
	workOrderID := c.Param("work_order_id")
	pdf, err := h.documents.EstimatePDF(c.Request.Context(), workOrderID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-estimate.pdf", workOrderID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
