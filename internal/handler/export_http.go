package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/auth"
	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

type ExportHTTPHandler struct {
	exportProducer port.ExportProducer
}

type ExportMoviesResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func NewExportHTTPHandler(exportProducer port.ExportProducer) *ExportHTTPHandler {
	return &ExportHTTPHandler{
		exportProducer: exportProducer,
	}
}

// Handle enqueues an export for the caller's own address and answers 202
// without waiting for the export to run.
func (h *ExportHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := auth.FromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "Missing authentication",
			})
		}

		request, err := h.exportProducer.Submit(c.Request().Context(), identity.Email)
		switch {
		case errors.Is(err, domain.ErrInvalidAddress):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Account has no valid email address",
			})
		case errors.Is(err, domain.ErrQueueUnavailable):
			log.WithError(err).WithField("email", identity.Email).Error("Failed to enqueue export request")
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"error": "Export service temporarily unavailable, please retry later",
			})
		case err != nil:
			log.WithError(err).WithField("email", identity.Email).Error("Failed to submit export request")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}

		return c.JSON(http.StatusAccepted, ExportMoviesResponse{
			Message:   "Export process started. You will receive an email shortly.",
			RequestID: request.MessageID,
		})
	}
}
