package handlers

import (
	"errors"
	"net/http"
	"time"

	request "dockmaster/internal/adapter/http/dto/request"
	response "dockmaster/internal/adapter/http/dto/response"
	"dockmaster/internal/domain/entities"
	"dockmaster/internal/observability/metrics"
	"dockmaster/internal/usecase"
	"dockmaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOutreachPayload = pkg.NewDomainErrorSimple("INVALID_OUTREACH_INPUT", "Invalid outreach payload", http.StatusBadRequest)
)

// OutreachHandler handles the proactive-outreach dashboard endpoints.

type OutreachHandler struct {
	usecase   usecase.IOutreachUseCase
	documents usecase.IDocumentsUseCase
}

func NewOutreachHandler(uc usecase.IOutreachUseCase, documents usecase.IDocumentsUseCase) *OutreachHandler {
	return &OutreachHandler{usecase: uc, documents: documents}
}

// ListOutreach returns the dashboard listing, filtered and sorted.
func (h *OutreachHandler) ListOutreach(c *gin.Context) {
	filters := entities.OutreachFilters{
		Status:       c.Query("status"),
		Channel:      c.Query("channel"),
		RevenueRange: c.Query("revenueRange"),
		Priority:     c.Query("priority"),
	}

	items, err := h.usecase.List(c.Request.Context(), filters)
	if err != nil {
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOutreachList(items))
}

// FunnelMetrics returns volume and revenue per funnel stage.
func (h *OutreachHandler) FunnelMetrics(c *gin.Context) {
	funnel, err := h.usecase.FunnelMetrics(c.Request.Context())
	if err != nil {
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFunnelMetrics(funnel))
}

// Report returns the funnel and listing as an XLSX download.
func (h *OutreachHandler) Report(c *gin.Context) {
	report, err := h.documents.OutreachReportXLSX(c.Request.Context())
	if err != nil {
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := "outreach-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report)
}

// AddOutreach creates a manual outreach draft.
func (h *OutreachHandler) AddOutreach(c *gin.Context) {
	var payload request.OutreachAddRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOutreachPayload.HTTPStatus, errInvalidOutreachPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOutreach(created))
}

// SendOutreach marks a draft as sent on its channel.
func (h *OutreachHandler) SendOutreach(c *gin.Context) {
	updated, err := h.usecase.Send(c.Request.Context(), c.Param("outreach_id"))
	if err != nil {
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.OutreachTransition(string(updated.Status))
	c.JSON(http.StatusOK, response.FromOutreach(updated))
}

// DismissOutreach removes an item from the funnel without deleting it.
func (h *OutreachHandler) DismissOutreach(c *gin.Context) {
	updated, err := h.usecase.Dismiss(c.Request.Context(), c.Param("outreach_id"))
	if err != nil {
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.OutreachTransition(string(updated.Status))
	c.JSON(http.StatusOK, response.FromOutreach(updated))
}

// UpdateMessage rewrites the outgoing message of a draft.
func (h *OutreachHandler) UpdateMessage(c *gin.Context) {
	var payload request.OutreachMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOutreachPayload.HTTPStatus, errInvalidOutreachPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateMessage(c.Request.Context(), c.Param("outreach_id"), payload.Message)
	if err != nil {
		appErr := mapOutreachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOutreach(updated))
}

func mapOutreachError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOutreachID), errors.Is(err, usecase.ErrInvalidOutreach), errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOutreachNotFound):
		return pkg.NewDomainErrorSimple("OUTREACH_NOT_FOUND", "Outreach not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
