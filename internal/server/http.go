package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/auth"
	"cineiut.com/catalog/internal/core/port"
	"cineiut.com/catalog/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(
	verifier *auth.Verifier,
	exportProducer port.ExportProducer,
	notifier port.CatalogNotifier,
) *HTTPServer {
	e := newEcho()

	server := &HTTPServer{
		echo: e,
	}

	// Initialize handlers
	exportHandler := handler.NewExportHTTPHandler(exportProducer)
	announcementHandler := handler.NewAnnouncementHTTPHandler(notifier)

	admin := verifier.Middleware(auth.ScopeAdmin)

	// Routes
	e.GET("/health", healthCheck("api"))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/export/movies", exportHandler.Handle(), admin)
	e.POST("/movie/:id/announcements", announcementHandler.Handle(), admin)

	return server
}

// NewMetricsServer serves only health and metrics, for the worker process.
func NewMetricsServer() *HTTPServer {
	e := newEcho()
	e.GET("/health", healthCheck("export-worker"))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return &HTTPServer{echo: e}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"requestId": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("Request failed")
				return nil
			}
			entry.Info("Request handled")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	return e
}

func healthCheck(service string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": service,
		})
	}
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
