package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"QuoteJournal/internal/collector"
	"QuoteJournal/internal/config"
	"QuoteJournal/internal/logger"
	"QuoteJournal/internal/recorder"
	"QuoteJournal/internal/scheduler"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("config validation", zap.Error(err))
	}
	log.Info("QuoteJournal starting")

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.DataSource.Timeout)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.DataSource.Timeout)
	}
	log.Info("data source", zap.String("name", fetcher.Name()))

	col := collector.NewCollector(fetcher, cfg.Instruments, log)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Output.DryRun {
		log.Warn("dry run enabled, reports will not be written")
		rec = recorder.NewNoopRecorder()
	} else {
		rec = recorder.NewFileRecorder(cfg.Output.Path, log)
		log.Info("reports will be appended", zap.String("path", cfg.Output.Path))
	}
	defer rec.Close()

	sched, err := scheduler.ParseSchedule(cfg.Schedule.DailyCron)
	if err != nil {
		log.Fatal("register daily task", zap.Error(err))
	}
	s := scheduler.NewScheduler(col, rec, sched, cfg.Schedule.PollInterval, log,
		scheduler.WithRunOnStart(cfg.Schedule.RunOnStart))

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	log.Info("QuoteJournal is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
	<-done
	log.Info("QuoteJournal stopped")
}
