package handlers

import (
	"errors"
	"net/http"

	request "dockmaster/internal/adapter/http/dto/request"
	response "dockmaster/internal/adapter/http/dto/response"
	"dockmaster/internal/observability/metrics"
	"dockmaster/internal/usecase"
	"dockmaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
)

// ReviewHandler handles the editable work-order review session endpoints.
//
// Sessions live in memory on the use case; every edit replies with the full
// recomputed state so the client never prices anything itself.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// OpenReview starts a review session from a scenario.
func (h *ReviewHandler) OpenReview(c *gin.Context) {
	var payload request.OpenReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.Open(c.Request.Context(), payload.ScenarioID)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReviewState(state))
}

// GetReview returns the current state of a session.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	state, err := h.usecase.Get(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewState(state))
}

// AddItem appends a blank labor line to the session.
func (h *ReviewHandler) AddItem(c *gin.Context) {
	state, err := h.usecase.AddItem(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewState(state))
}

// UpdateItem applies a partial edit to one line item.
func (h *ReviewHandler) UpdateItem(c *gin.Context) {
	var payload request.LineItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}
	if !payload.Valid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown line item category", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("review_id"), c.Param("item_id"), payload.ToPatch())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewState(state))
}

// RemoveItem deletes one line item from the session.
func (h *ReviewHandler) RemoveItem(c *gin.Context) {
	state, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("review_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewState(state))
}

// ResetReview restores the session to the scenario's original line items.
func (h *ReviewHandler) ResetReview(c *gin.Context) {
	state, err := h.usecase.Reset(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReviewState(state))
}

// CommitReview persists the session as a pending work order and closes it.
func (h *ReviewHandler) CommitReview(c *gin.Context) {
	workOrder, err := h.usecase.Commit(c.Request.Context(), c.Param("review_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.WorkOrderCommitted()
	c.JSON(http.StatusCreated, response.FromWorkOrder(workOrder))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewID), errors.Is(err, usecase.ErrInvalidScenarioID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScenarioNotFound):
		return pkg.NewDomainErrorSimple("SCENARIO_NOT_FOUND", "Scenario not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ALREADY_EXISTS", "Work order already exists for this id", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
