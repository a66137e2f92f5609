package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"simconsole/internal/activity"
	"simconsole/internal/catalog"
	"simconsole/internal/config"
	"simconsole/internal/health"
	"simconsole/internal/logger"
	"simconsole/internal/mcpserver"
	"simconsole/internal/metrics"
	"simconsole/internal/simclient"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	baseURL := flag.String("base-url", "", "simulation backend root (overrides config)")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus /metrics and /healthz on this address")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *baseURL != "" {
		cfg = cfg.WithBaseURL(*baseURL)
	}
	if *metricsAddr != "" {
		cfg = cfg.WithMetricsAddr(*metricsAddr)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// stdout carries the protocol, diagnostics go to stderr unless a file is configured
	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	diag := logger.New(lvl, true, os.Stderr)
	if cfg.LogFile != "" {
		fileLog, closeLog, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer closeLog()
		diag = fileLog
	}

	client, err := simclient.New(cfg.BaseURL, cfg.RequestTimeout, simclient.WithLogger(diag))
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal := activity.New()
	monitor := health.NewMonitor(client, journal,
		health.WithInterval(cfg.ProbeInterval),
		health.WithTimeout(cfg.ProbeTimeout),
		health.WithLogger(diag),
	)

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		m = metrics.New()
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr, monitor.State); err != nil {
				diag.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	server, err := mcpserver.NewServer(mcpserver.Config{
		ServerName:    "simconsole",
		ServerVersion: "1.0.0",
	}, mcpserver.Deps{
		Client:  client,
		Journal: journal,
		Table:   catalog.Default(),
		Monitor: monitor,
		Metrics: m,
		Logger:  diag,
	})
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	fmt.Fprintf(os.Stderr, "simconsole MCP server targeting %s\n", cfg.BaseURL)
	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
