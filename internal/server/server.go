package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.com/ignitionrobotics/billing/mollie/internal/conf"
	"gitlab.com/ignitionrobotics/billing/mollie/internal/metrics"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/application"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/client"
	"go.uber.org/zap"
)

// shutdownTimeout is the time given to in-flight webhook calls when the server stops.
const shutdownTimeout = 10 * time.Second

// Setup initializes the conf.Config to run the web server.
func Setup(logger *zap.Logger) (conf.Config, error) {
	var cfg conf.Config
	if err := cfg.Parse(); err != nil {
		logger.Error("failed to parse config", zap.Error(err))
		return conf.Config{}, err
	}
	return cfg, nil
}

// Run runs the web server using the given config until it fails or the process receives SIGINT or SIGTERM.
// Processed payments are handed to application.NewLogListener, which logs their status.
func Run(config conf.Config, logger *zap.Logger) error {
	registry := prometheus.NewRegistry()
	collectors := metrics.New(registry)

	c, err := client.NewClientFromConfig(config.Mollie, logger, collectors)
	if err != nil {
		return err
	}

	s := NewServer(Options{
		config: config,
		payments: application.NewWebhookService(application.Options{
			Payments: c.Payments(),
			Listener: application.NewLogListener(logger),
			Logger:   logger,
			Timeout:  config.Timeout,
		}),
		logger:   logger,
		metrics:  collectors,
		gatherer: registry,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- s.ListenAndServe()
	}()

	select {
	case err = <-errs:
		return err
	case <-ctx.Done():
		logger.Info("shutting HTTP server down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Options contains the components needed to create a Server.
type Options struct {
	config   conf.Config
	payments application.Service
	logger   *zap.Logger
	metrics  *metrics.Collectors
	gatherer prometheus.Gatherer
}

// Server exposes the Mollie payment webhook over HTTP.
type Server struct {
	payments   application.Service
	logger     *zap.Logger
	metrics    *metrics.Collectors
	httpServer *http.Server
}

// NewServer initializes a new Server.
func NewServer(opts Options) *Server {
	if opts.logger == nil {
		opts.logger = zap.NewNop()
	}
	if opts.metrics == nil {
		registry := prometheus.NewRegistry()
		opts.metrics = metrics.New(registry)
		opts.gatherer = registry
	}
	if opts.gatherer == nil {
		opts.gatherer = prometheus.NewRegistry()
	}

	s := &Server{
		payments: opts.payments,
		logger:   opts.logger,
		metrics:  opts.metrics,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.config.Port),
		Handler:           s.routes(opts.gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// routes returns the HTTP handler of the server.
func (s *Server) routes(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/webhooks/payments", s.PaymentWebhook)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe listens on the configured TCP port and serves requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening for HTTP requests", zap.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
