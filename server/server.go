// Package server exposes the guest list engine over HTTP: upload a CSV, get
// the report or a filtered subset back as JSON or CSV.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/amritr10/Reporter-app/config"
)

// Server serves analyses. Each request parses its own snapshot; handlers
// share only read-only configuration.
type Server struct {
	app      *fiber.App
	server   *http.Server
	cfg      *config.Config
	registry *prometheus.Registry
	metrics  *Metrics
	log      logrus.FieldLogger
}

// New builds the fiber app and registers routes.
func New(cfg *config.Config, log logrus.FieldLogger) *Server {
	s := &Server{
		cfg:      cfg,
		registry: prometheus.NewRegistry(),
		log:      log.WithField("service", "server"),
	}
	s.metrics = NewMetrics(s.registry)

	s.app = fiber.New(fiber.Config{
		AppName:      "Guest List Reporter",
		BodyLimit:    cfg.Server.MaxUploadBytes,
		ErrorHandler: errorHandler,
	})

	setupMiddleware(s.app)

	s.app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if cfg.Server.MetricsEnabled {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}

	apiV1 := s.app.Group("/api/v1")
	apiV1.Post("/report", s.handleReport)
	apiV1.Post("/filter", s.handleFilter)
	apiV1.Get("/vocabulary", s.handleVocabulary)

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

// Start begins serving in the background.
func (s *Server) Start(_ context.Context) error {
	s.server = &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           adaptor.FiberApp(s.app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.log.WithField("addr", s.cfg.Server.Addr).Info("Starting guest list server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("Server failed to start")
		}
	}()

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	s.log.Info("Stopping guest list server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "failed to shutdown server")
	}
	return nil
}
