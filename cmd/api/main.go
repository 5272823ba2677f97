// The api command runs the item service HTTP API: it loads
// configuration, runs pending database migrations and serves the REST
// endpoints until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fullstacklab/itemsvc/internal/config"
	"github.com/fullstacklab/itemsvc/internal/handler"
	"github.com/fullstacklab/itemsvc/internal/logger"
	"github.com/fullstacklab/itemsvc/internal/middleware"
	"github.com/fullstacklab/itemsvc/internal/repository"
	"github.com/fullstacklab/itemsvc/internal/router"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/fullstacklab/itemsvc/internal/service"

	"github.com/fullstacklab/itemsvc/internal/database"
	_ "github.com/joho/godotenv/autoload"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The bootstrap logger inside Load already reported the details.
		os.Exit(1)
	}

	log := logger.New(cfg)

	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	s, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewService(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	r := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(r)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
