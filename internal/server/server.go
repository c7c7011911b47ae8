package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/akolanti/BrainAPI/internal/adapter/utils"
	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/handlers"
	"github.com/akolanti/BrainAPI/internal/middleware"
	"github.com/akolanti/BrainAPI/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

func CreateServer(listenAddr string) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()

	r.Router.Post("/ask", middleware.AskHandler)
	r.Router.Post("/upload", middleware.UploadHandler)
	r.Router.Get("/documents", middleware.ListDocumentsHandler)
	r.Router.Get("/health", handlers.HealthHandler) //liveness, no auth

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error :", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully", "error", err)
		}

		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force shut down")
		os.Exit(1)
	}
}
