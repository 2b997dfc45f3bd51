package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"StockGenie/internal/collector"
	"StockGenie/internal/config"
	"StockGenie/internal/engine"
	"StockGenie/internal/logger"
	"StockGenie/internal/notifier"
	"StockGenie/internal/predictor"
	"StockGenie/internal/recorder"
	"StockGenie/internal/scheduler"
	"StockGenie/internal/server"
	"StockGenie/internal/strategy"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	zl := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer zl.Sync()
	zl.Info("StockGenie starting",
		zap.Strings("stocks", cfg.Scan.Stocks),
		zap.Int("interval_min", cfg.Scan.IntervalMin))

	// Init fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	zl.Info("data source ready", zap.String("source", fetcher.Name()))
	col := collector.NewCollector(fetcher)
	pred := predictor.New(fetcher, zl)

	// Init recorder; fall back to noop so a broken database never
	// prevents scanning.
	var rec recorder.Recorder
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, zl)
	if err != nil {
		zl.Warn("init sqlite recorder failed, using noop", zap.Error(err))
		rec = recorder.NewNoopRecorder()
	} else {
		rec = sr
		defer sr.Close()
	}

	// Init notifier
	var notify notifier.Notifier
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, zl)
		notify = tn
	} else {
		zl.Warn("telegram not configured, alerts will only be logged")
		notify = notifier.NewConsoleNotifier(zl)
	}

	eng := engine.New(cfg.Scan.Stocks,
		strategy.Thresholds{Fall: cfg.Scan.FallThreshold, Rise: cfg.Scan.RiseThreshold},
		col, pred, rec, notify, zl)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(eng, zl)
	if err := sched.Register(cfg.Scan.IntervalMin); err != nil {
		zl.Fatal("register scan task", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling when configured
	if tn != nil {
		go tn.StartPolling(ctx, eng.HandleCommand)
		zl.Info("telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		zl.Info("RUN_ON_START enabled, triggering scan now")
		eng.TriggerScan()
	}

	// Start HTTP server
	srv := server.New(eng, cfg.Server.Port, zl)
	go func() {
		if err := srv.Start(); err != nil {
			zl.Fatal("http server", zap.Error(err))
		}
	}()

	zl.Info("StockGenie is running, press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zl.Info("shutdown signal received, stopping")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http shutdown", zap.Error(err))
	}
	zl.Info("StockGenie stopped")
}
