package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/lzjever/sandboxd/internal/daemon"
	"github.com/lzjever/sandboxd/internal/observability"
)

func main() {
	var cfg daemon.Config
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := observability.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Replace global logger
	zap.ReplaceGlobals(log)

	reg := prometheus.DefaultRegisterer
	observability.RegisterAll(reg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d := daemon.New(cfg, log)
	if err := d.Start(); err != nil {
		log.Fatal("daemon start failed", zap.Error(err))
	}

	<-ctx.Done()
	log.Info("shutting down")

	if err := d.Stop(); err != nil {
		log.Error("shutdown error", zap.Error(err))
		os.Exit(1)
	}
}
