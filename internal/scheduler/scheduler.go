package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"AssetScreener/internal/exporter"
	"AssetScreener/internal/recorder"
	"AssetScreener/internal/report"
	"AssetScreener/internal/screener"
)

// Scheduler owns the screening job and optionally re-runs it on a cron
// schedule. The symbol universe is re-read on every run so the tickers file
// can change between runs.
type Scheduler struct {
	Cron        *cron.Cron
	Evaluator   *screener.Evaluator
	Recorder    recorder.Recorder
	TickersFile string
	OutputCSV   string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ev *screener.Evaluator, rec recorder.Recorder, tickersFile, outputCSV string) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Evaluator:   ev,
		Recorder:    rec,
		TickersFile: tickersFile,
		OutputCSV:   outputCSV,
	}
}

// RunScreen executes one full screening pass: read symbols, evaluate, export
// CSV, record, log a summary. The returned error is limited to unrecoverable
// resource failures (symbol file, CSV write); per-symbol data problems are
// degraded inside the evaluator.
func (s *Scheduler) RunScreen() error {
	symbols, err := screener.ReadSymbolFile(s.TickersFile)
	if err != nil {
		return fmt.Errorf("load symbols: %w", err)
	}
	log.Printf("[INFO] screening %d symbols from %s", len(symbols), s.TickersFile)

	start := time.Now()
	results := s.Evaluator.Evaluate(symbols)

	if err := exporter.WriteCSV(s.OutputCSV, results); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Printf("[INFO] results written to %s", s.OutputCSV)

	if err := s.Recorder.RecordRun(start, results); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	log.Printf("[INFO] %s", report.FormatRunSummary(results, time.Since(start)))
	return nil
}

// Register schedules RunScreen under the given cron expression. Errors from
// scheduled runs are logged, never fatal.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, func() {
		if err := s.RunScreen(); err != nil {
			log.Printf("[ERROR] scheduled screen: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register screen task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
