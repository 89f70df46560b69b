package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "dockmaster/internal/adapter/http/dto/request"
	"dockmaster/internal/observability/metrics"
	"dockmaster/internal/usecase"
	"dockmaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidScopePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ScopeHandler handles the LLM scope endpoints: structured scenario
// generation and the streamed service narrative.

type ScopeHandler struct {
	usecase usecase.IScopeUseCase
}

func NewScopeHandler(uc usecase.IScopeUseCase) *ScopeHandler {
	return &ScopeHandler{usecase: uc}
}

// GenerateScope turns a free-form customer request into a structured,
// fully priced scenario.
func (h *ScopeHandler) GenerateScope(c *gin.Context) {
	var payload request.ScopeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		metrics.ScopeRequest("invalid")
		c.JSON(errInvalidScopePayload.HTTPStatus, errInvalidScopePayload.ToHTTPError())
		return
	}

	scenario, err := h.usecase.GenerateScope(c.Request.Context(), payload.Prompt)
	if err != nil {
		log.Printf("[scope][handler] generate failed err=%v", err)
		metrics.ScopeRequest("error")
		appErr := mapScopeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.ScopeRequest("success")
	c.JSON(http.StatusOK, scenario)
}

// StreamNarrative relays the model's service narrative as a plain-text
// stream, chunk by chunk, until the upstream closes.
func (h *ScopeHandler) StreamNarrative(c *gin.Context) {
	var payload request.ScopeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		metrics.ScopeRequest("invalid")
		c.JSON(errInvalidScopePayload.HTTPStatus, errInvalidScopePayload.ToHTTPError())
		return
	}

	stream, err := h.usecase.StreamNarrative(c.Request.Context(), payload.Prompt)
	if err != nil {
		log.Printf("[scope][handler] stream failed err=%v", err)
		metrics.ScopeRequest("error")
		appErr := mapScopeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer stream.Close()

	metrics.ScopeRequest("success")
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)
	buf := make([]byte, 4096)
	for {
		n, readErr := stream.Read(buf)
		if n > 0 {
			if _, writeErr := c.Writer.Write(buf[:n]); writeErr != nil {
				return
			}
			c.Writer.Flush()
		}
		if readErr != nil {
			if readErr != io.EOF {
				log.Printf("[scope][handler] stream interrupted err=%v", readErr)
			}
			return
		}
	}
}

func mapScopeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPrompt):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScopeNotConfigured):
		return pkg.NewDomainErrorSimple("SCOPE_NOT_CONFIGURED", "Scope generation is not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrScopeUpstream):
		return pkg.NewDomainError("SCOPE_UPSTREAM_ERROR", "Scope provider request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
