package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/supervision-roi/internal/config"
	"github.com/iwvelando/supervision-roi/internal/logging"
	"github.com/iwvelando/supervision-roi/internal/roi"
	"github.com/iwvelando/supervision-roi/internal/server"
	"github.com/iwvelando/supervision-roi/pkg/constants"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	maxBodySize := flag.String("max-body-size", "", "request body limit override (e.g. 64K, 1M)")
	flag.Parse()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *maxBodySize != "" {
		size, err := server.ParseSize(*maxBodySize)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid -max-body-size\", \"error\": \"%v\"}\n", err)
			os.Exit(1)
		}
		cfg.SetBodySizeBytes(size)
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pricing := server.NewPricing(nil)
	if cfg.PricingFile != "" {
		conf, err := config.LoadConfiguration(cfg.PricingFile)
		if err != nil {
			logger.Fatal("failed to load pricing",
				zap.String("op", "main"),
				zap.String("path", cfg.PricingFile),
				zap.Error(err),
			)
		}
		pricing.Set(conf.PriceTable())

		go func() {
			err := config.WatchPricing(ctx, cfg.PricingFile, logger, func(table roi.PriceTable) {
				pricing.Set(table)
			})
			if err != nil {
				logger.Error("pricing watcher stopped",
					zap.String("op", "main"),
					zap.Error(err),
				)
			}
		}()
	}

	httpSrv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg, pricing, version),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("ROI server listening",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.String("version", version),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	<-ctx.Done()
	logger.Info("ROI server shutting down",
		zap.String("op", "main"),
	)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
