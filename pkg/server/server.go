package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/de-tools/sheet-metrics/pkg/handlers/report"
	sheetmiddleware "github.com/de-tools/sheet-metrics/pkg/server/middleware"
	"github.com/de-tools/sheet-metrics/pkg/services/pipeline"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
	config Config
}

type Dependencies struct {
	Processor pipeline.Processor
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	MaxContentBytes int64
	Dependencies    Dependencies
}

// ConfigureRouter builds the API router with request id, request
// logging, panic recovery, and body size middleware applied.
func ConfigureRouter(logger *zerolog.Logger, config Config) *chi.Mux {
	reportHandler := handlers.NewHandler(config.Dependencies.Processor)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(sheetmiddleware.Logger(logger))
	router.Use(middleware.Recoverer)
	if config.MaxContentBytes > 0 {
		router.Use(middleware.RequestSize(config.MaxContentBytes))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/workbooks/analyze", reportHandler.AnalyzeWorkbook)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(&logger, config)

	return &WebAPI{
		router: router,
		logger: &logger,
		config: config,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		timeout := w.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
