package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"Geostore/internal/config"
	"Geostore/internal/logging"
	"Geostore/internal/server"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := server.Run(ctx, cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
