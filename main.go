package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Piyush-Dabare/vikas/client"
	"github.com/Piyush-Dabare/vikas/config"
	"github.com/Piyush-Dabare/vikas/routes"
	"github.com/Piyush-Dabare/vikas/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	cfg := sysConfigs.Config

	if cfg.DebugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.IsProduction() || !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// The dataset must be complete before the listener opens.
	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout())
	dataset, err := service.LoadDataset(loadCtx, client.NewDatasetClient(cfg.FetchTimeout()), cfg.DataSourceUrl)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.DataSourceUrl).Msg("Dataset load failed")
	}

	router := routes.SetupRouter(config.NewConfigManager(cfg), service.NewDatasetService(dataset))

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	stop, release := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer release()
	<-stop.Done()

	log.Info().Msg("Shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
