package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

type AnnouncementHTTPHandler struct {
	notifier port.CatalogNotifier
}

type AnnouncementResponse struct {
	Message    string `json:"message"`
	Recipients int    `json:"recipients"`
}

func NewAnnouncementHTTPHandler(notifier port.CatalogNotifier) *AnnouncementHTTPHandler {
	return &AnnouncementHTTPHandler{
		notifier: notifier,
	}
}

func (h *AnnouncementHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || movieID <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid movie id",
			})
		}

		event := domain.AnnouncementEvent(c.QueryParam("event"))
		if event == "" {
			event = domain.AnnouncementCreated
		}
		if event != domain.AnnouncementCreated && event != domain.AnnouncementUpdated {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "event must be 'created' or 'updated'",
			})
		}

		recipients, err := h.notifier.Announce(c.Request().Context(), movieID, event)
		if errors.Is(err, domain.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Movie not found",
			})
		}
		if err != nil {
			log.WithError(err).WithField("movieId", movieID).Error("Failed to announce movie")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Internal server error",
			})
		}

		return c.JSON(http.StatusAccepted, AnnouncementResponse{
			Message:    "Announcement dispatched",
			Recipients: recipients,
		})
	}
}
