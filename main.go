package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"simconsole/internal/activity"
	"simconsole/internal/catalog"
	"simconsole/internal/config"
	"simconsole/internal/health"
	"simconsole/internal/logger"
	"simconsole/internal/metrics"
	"simconsole/internal/orchestrator"
	"simconsole/internal/simclient"
	"simconsole/ui/console"
	"simconsole/ui/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	baseURL := flag.String("base-url", "", "simulation backend root (overrides config)")
	runAction := flag.String("run", "", "trigger one action by id, print the result and exit")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus /metrics and /healthz on this address")
	logFile := flag.String("log-file", "", "write diagnostic logs to this file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	if err := run(*configPath, *baseURL, *runAction, *metricsAddr, *logFile, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, baseURL, runAction, metricsAddr, logFile, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg = cfg.WithBaseURL(baseURL)
	}
	if metricsAddr != "" {
		cfg = cfg.WithMetricsAddr(metricsAddr)
	}
	if logFile != "" {
		cfg = cfg.WithLogFile(logFile)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := simclient.New(cfg.BaseURL, cfg.RequestTimeout, simclient.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal := activity.New()
	table := catalog.Default()
	monitor := health.NewMonitor(client, journal,
		health.WithInterval(cfg.ProbeInterval),
		health.WithTimeout(cfg.ProbeTimeout),
		health.WithLogger(log),
	)

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		m = metrics.New()
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr, monitor.State); err != nil {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	if runAction != "" {
		return runHeadless(ctx, runAction, client, journal, table, m, log)
	}

	return tui.Start(cfg, tui.Deps{
		Client:  client,
		Journal: journal,
		Table:   table,
		Monitor: monitor,
		Metrics: m,
		Logger:  log,
	})
}

// runHeadless triggers one action and prints what the console would have shown.
func runHeadless(ctx context.Context, id string, client simclient.Doer, journal *activity.Log, table *catalog.Table, m *metrics.Metrics, log *logger.Logger) error {
	action, ok := catalog.FindAction(id)
	if !ok {
		return fmt.Errorf("unknown action %q", id)
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(log)}
	if m != nil {
		opts = append(opts, orchestrator.WithObserver(m))
	}

	rec := &orchestrator.Recorder{}
	orchestrator.New(client, journal, rec, table, opts...).Execute(ctx, orchestrator.CallFor(action))

	result, _ := rec.Last()
	console.Print(os.Stdout, result, journal.Entries())
	if !result.Success {
		return fmt.Errorf("%s did not succeed", action.Label)
	}
	return nil
}
