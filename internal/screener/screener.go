package screener

import (
	"fmt"
	"log"
	"time"

	"github.com/guregu/null/v6"

	"AssetScreener/internal/calculator"
	"AssetScreener/internal/collector"
	"AssetScreener/internal/model"
)

// Fallback constants applied when the corresponding Config field is unset.
const (
	DefaultWindow       = "6mo"
	DefaultBatchSize    = 100
	DefaultRequestDelay = 500 * time.Millisecond
	DefaultBatchDelay   = 5 * time.Second
	DefaultBenchmark    = "^BVSP"
	DefaultRiskFreeRate = 0.06
)

// Config controls one screening pass.
type Config struct {
	Window       string        // historical window descriptor, e.g. "6mo"
	BatchSize    int           // symbols per batch
	RequestDelay time.Duration // pause after each symbol
	BatchDelay   time.Duration // pause after each batch
	Benchmark    string        // benchmark index symbol for beta
	RiskFreeRate float64       // annual risk-free rate for sharpe
}

// Evaluator computes the metric set for a universe of ticker symbols,
// batch by batch, pacing outbound requests to avoid provider rate limits.
type Evaluator struct {
	Fetcher collector.Fetcher
	Config  Config

	windowDays int

	// Sleep is the pacing primitive, replaceable in tests. Nil means
	// time.Sleep.
	Sleep func(time.Duration)
}

// NewEvaluator creates an Evaluator, applying default window, batch size and
// benchmark where the config leaves them unset. Zero delays are kept as-is:
// no pacing is a valid configuration.
func NewEvaluator(fetcher collector.Fetcher, cfg Config) (*Evaluator, error) {
	if cfg.Window == "" {
		cfg.Window = DefaultWindow
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Benchmark == "" {
		cfg.Benchmark = DefaultBenchmark
	}
	if cfg.RiskFreeRate == 0 {
		cfg.RiskFreeRate = DefaultRiskFreeRate
	}

	days, err := ParseWindow(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("parse window: %w", err)
	}

	return &Evaluator{Fetcher: fetcher, Config: cfg, windowDays: days}, nil
}

// Evaluate processes symbols in consecutive batches of Config.BatchSize (the
// last batch may be smaller) and returns one result per symbol, in input
// order. A fetch or computation failure degrades the affected metrics of
// that symbol and never aborts the run; diagnostics go to the log.
func (e *Evaluator) Evaluate(symbols []string) []model.AssetMetrics {
	results := make([]model.AssetMetrics, 0, len(symbols))
	totalBatches := (len(symbols) + e.Config.BatchSize - 1) / e.Config.BatchSize

	// Benchmark bars are cached for the duration of this pass once a fetch
	// succeeds with data. Failed fetches are not cached so a later symbol
	// gets a fresh attempt.
	var benchBars []model.OHLCV

	for start := 0; start < len(symbols); start += e.Config.BatchSize {
		end := start + e.Config.BatchSize
		if end > len(symbols) {
			end = len(symbols)
		}
		batch := symbols[start:end]
		log.Printf("[INFO] processing batch %d of %d (%d symbols)",
			start/e.Config.BatchSize+1, totalBatches, len(batch))

		for _, symbol := range batch {
			if benchBars == nil {
				benchBars = e.fetchBenchmark()
			}
			results = append(results, e.evaluateOne(symbol, benchBars))
			e.sleep(e.Config.RequestDelay)
		}
		e.sleep(e.Config.BatchDelay)
	}
	return results
}

// evaluateOne computes all five metrics for a single symbol from one bars
// fetch. Liquidity falls back to 0 on failure; the other metrics degrade to
// absent.
func (e *Evaluator) evaluateOne(symbol string, benchBars []model.OHLCV) model.AssetMetrics {
	res := model.AssetMetrics{Symbol: symbol}

	bars, err := e.Fetcher.FetchDailyBars(symbol, e.windowDays)
	if err != nil {
		log.Printf("[WARN] %s: fetch bars: %v", symbol, err)
		bars = nil
	}

	res.Liquidity = calculator.Liquidity(bars)

	if beta, err := calculator.Beta(bars, benchBars); err != nil {
		log.Printf("[WARN] %s: beta: %v", symbol, err)
	} else {
		res.Beta = null.FloatFrom(beta)
	}

	if sharpe, err := calculator.Sharpe(bars, e.Config.RiskFreeRate); err != nil {
		log.Printf("[WARN] %s: sharpe: %v", symbol, err)
	} else {
		res.Sharpe = null.FloatFrom(sharpe)
	}

	if pe, err := e.Fetcher.FetchTrailingPE(symbol); err != nil {
		log.Printf("[WARN] %s: trailing P/E: %v", symbol, err)
	} else {
		res.PERatio = null.FloatFrom(pe)
	}

	if momentum, err := calculator.Momentum(bars); err != nil {
		log.Printf("[WARN] %s: momentum: %v", symbol, err)
	} else {
		res.Momentum = null.FloatFrom(momentum)
	}

	return res
}

func (e *Evaluator) fetchBenchmark() []model.OHLCV {
	bars, err := e.Fetcher.FetchDailyBars(e.Config.Benchmark, e.windowDays)
	if err != nil {
		log.Printf("[WARN] benchmark %s: fetch bars: %v", e.Config.Benchmark, err)
		return nil
	}
	if len(bars) == 0 {
		log.Printf("[WARN] benchmark %s: no data", e.Config.Benchmark)
		return nil
	}
	return bars
}

func (e *Evaluator) sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	if e.Sleep != nil {
		e.Sleep(d)
		return
	}
	time.Sleep(d)
}
