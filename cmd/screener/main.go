package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AssetScreener/internal/collector"
	"AssetScreener/internal/config"
	"AssetScreener/internal/recorder"
	"AssetScreener/internal/scheduler"
	"AssetScreener/internal/screener"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] AssetScreener starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init evaluator
	ev, err := screener.NewEvaluator(fetcher, screener.Config{
		Window:       cfg.Screen.Window,
		BatchSize:    cfg.Screen.BatchSize,
		RequestDelay: time.Duration(cfg.Screen.RequestDelayMS) * time.Millisecond,
		BatchDelay:   time.Duration(cfg.Screen.BatchDelayMS) * time.Millisecond,
		Benchmark:    cfg.Screen.Benchmark,
		RiskFreeRate: cfg.Screen.RiskFreeRate,
	})
	if err != nil {
		log.Fatalf("[FATAL] init evaluator: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	sched := scheduler.NewScheduler(ev, rec, cfg.Universe.TickersFile, cfg.Output.CSVPath)

	// One-shot mode: screen once and exit.
	if cfg.Schedule.Cron == "" {
		if err := sched.RunScreen(); err != nil {
			log.Fatalf("[FATAL] screen: %v", err)
		}
		log.Println("[INFO] AssetScreener finished")
		return
	}

	// Scheduled mode: re-run on the configured cron expression.
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, screening now")
		go func() {
			if err := sched.RunScreen(); err != nil {
				log.Printf("[ERROR] initial screen: %v", err)
			}
		}()
	}

	log.Println("[INFO] AssetScreener is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] AssetScreener stopped")
}
