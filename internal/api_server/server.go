package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/terrasense/slope-monitor/internal/config"
	"github.com/terrasense/slope-monitor/internal/engine"
	handlers "github.com/terrasense/slope-monitor/internal/handlers/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/service"
	"github.com/terrasense/slope-monitor/internal/store"
	"github.com/terrasense/slope-monitor/pkg/metrics"
	"github.com/terrasense/slope-monitor/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	engine   engine.Engine
	listener net.Listener
}

// New returns a new instance of a slope-monitor API server.
func New(
	cfg *config.Config,
	store store.Store,
	eng engine.Engine,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		engine:   eng,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	seriesHandler := handlers.NewSeriesHandler(service.NewSeriesService(s.store))
	calculationHandler := handlers.NewCalculationHandler(
		service.NewCalibrationService(s.store, s.engine, s.cfg.Calibration.InitialDecay, s.cfg.Calibration.InitialCoefficient),
		service.NewPrevisionService(s.store, s.engine),
	)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/datasets/{id}/series/{type}/validate", seriesHandler.Validate)
		r.Post("/datasets/{id}/series/{type}/import", seriesHandler.Import)
		r.Post("/calculations/calibrate", calculationHandler.Calibrate)
		r.Post("/calculations/prevision", calculationHandler.Prevision)
	})

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
