package screener

import (
	"errors"
	"testing"
	"time"

	"AssetScreener/internal/collector"
	"AssetScreener/internal/model"
)

func testBars(t *testing.T, start time.Time, closes ...float64) []model.OHLCV {
	t.Helper()
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 5000,
		}
	}
	return bars
}

func newTestEvaluator(t *testing.T, fetcher collector.Fetcher, cfg Config) *Evaluator {
	t.Helper()
	ev, err := NewEvaluator(fetcher, cfg)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	ev.Sleep = func(time.Duration) {} // no pacing in tests unless recorded
	return ev
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		window string
		days   int
	}{
		{"6mo", 126},
		{"1mo", 21},
		{"1y", 252},
		{"2y", 504},
		{"2w", 10},
		{"90d", 90},
		{"6MO", 126},
	}
	for _, tt := range tests {
		days, err := ParseWindow(tt.window)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.window, err)
			continue
		}
		if days != tt.days {
			t.Errorf("%q: expected %d days, got %d", tt.window, tt.days, days)
		}
	}

	for _, bad := range []string{"", "mo", "-1d", "sixmonths", "0y"} {
		if _, err := ParseWindow(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestEvaluate_BatchingAndPacing(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &collector.MockFetcher{DailyData: testBars(t, start, 100, 102, 99, 103, 101)}

	ev, err := NewEvaluator(fetcher, Config{
		BatchSize:    2,
		RequestDelay: 500 * time.Millisecond,
		BatchDelay:   5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	var slept []time.Duration
	ev.Sleep = func(d time.Duration) { slept = append(slept, d) }

	symbols := []string{"A", "B", "C", "D", "E"}
	results := ev.Evaluate(symbols)

	if len(results) != len(symbols) {
		t.Fatalf("expected %d results, got %d", len(symbols), len(results))
	}
	for i, r := range results {
		if r.Symbol != symbols[i] {
			t.Errorf("result %d: expected symbol %s, got %s", i, symbols[i], r.Symbol)
		}
	}

	// 5 symbols in batches of 2 means ceil(5/2) = 3 batches: one request
	// delay per symbol plus one batch delay per batch.
	var requests, batches int
	for _, d := range slept {
		switch d {
		case 500 * time.Millisecond:
			requests++
		case 5 * time.Second:
			batches++
		default:
			t.Errorf("unexpected sleep duration %v", d)
		}
	}
	if requests != 5 {
		t.Errorf("expected 5 request delays, got %d", requests)
	}
	if batches != 3 {
		t.Errorf("expected 3 batch delays, got %d", batches)
	}
}

func TestEvaluate_ZeroDelaysSkipSleep(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &collector.MockFetcher{DailyData: testBars(t, start, 100, 101, 99)}
	ev, err := NewEvaluator(fetcher, Config{BatchSize: 2})
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	var calls int
	ev.Sleep = func(time.Duration) { calls++ }
	ev.Evaluate([]string{"A", "B", "C"})
	if calls != 0 {
		t.Errorf("expected no sleeps with zero delays, got %d", calls)
	}
}

func TestEvaluate_EmptySeriesForOneSymbol(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	good := testBars(t, start, 100, 102, 99, 103, 101)
	bench := testBars(t, start, 1000, 1020, 990, 1030, 1010)

	fetcher := &collector.MockFetcher{
		BySymbol: map[string][]model.OHLCV{
			"AAA":   good,
			"BBB":   nil, // provider has no data
			"^BVSP": bench,
		},
		PEBySymbol: map[string]float64{"AAA": 12.5},
	}

	ev := newTestEvaluator(t, fetcher, Config{BatchSize: 1})
	results := ev.Evaluate([]string{"AAA", "BBB"})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	aaa, bbb := results[0], results[1]
	if aaa.Liquidity != 5000 {
		t.Errorf("AAA: expected liquidity 5000, got %v", aaa.Liquidity)
	}
	if !aaa.Beta.Valid || !aaa.Sharpe.Valid || !aaa.Momentum.Valid {
		t.Errorf("AAA: expected computed beta/sharpe/momentum, got %+v", aaa)
	}
	if !aaa.PERatio.Valid || aaa.PERatio.Float64 != 12.5 {
		t.Errorf("AAA: expected pe_ratio 12.5, got %+v", aaa.PERatio)
	}

	if bbb.Liquidity != 0 {
		t.Errorf("BBB: expected liquidity exactly 0, got %v", bbb.Liquidity)
	}
	if bbb.Beta.Valid || bbb.Sharpe.Valid || bbb.PERatio.Valid || bbb.Momentum.Valid {
		t.Errorf("BBB: expected all metrics absent, got %+v", bbb)
	}
}

func TestEvaluate_FetchErrorDegradesOnlyThatSymbol(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	good := testBars(t, start, 100, 102, 99, 103, 101)
	bench := testBars(t, start, 1000, 1020, 990, 1030, 1010)

	fetcher := &errFetcher{
		inner: &collector.MockFetcher{
			BySymbol: map[string][]model.OHLCV{
				"AAA":   good,
				"BBB":   good,
				"CCC":   good,
				"^BVSP": bench,
			},
			TrailingPE: 9.9,
		},
		failSymbol: "BBB",
	}

	ev := newTestEvaluator(t, fetcher, Config{BatchSize: 3})
	results := ev.Evaluate([]string{"AAA", "BBB", "CCC"})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Symbol == "BBB" {
			if r.Liquidity != 0 || r.Beta.Valid || r.Sharpe.Valid || r.Momentum.Valid {
				t.Errorf("BBB: expected degraded metrics, got %+v", r)
			}
			continue
		}
		if r.Liquidity == 0 || !r.Beta.Valid || !r.Sharpe.Valid || !r.Momentum.Valid {
			t.Errorf("%s: expected computed metrics, got %+v", r.Symbol, r)
		}
	}
}

func TestEvaluate_OneBarsFetchPerSymbol(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	good := testBars(t, start, 100, 102, 99, 103, 101)
	bench := testBars(t, start, 1000, 1020, 990, 1030, 1010)

	fetcher := &collector.MockFetcher{
		BySymbol: map[string][]model.OHLCV{
			"AAA":   good,
			"BBB":   good,
			"^BVSP": bench,
		},
		TrailingPE: 9.9,
	}

	ev := newTestEvaluator(t, fetcher, Config{BatchSize: 10})
	ev.Evaluate([]string{"AAA", "BBB"})

	// One fetch per symbol feeds all metrics; the benchmark series is cached
	// for the whole pass after the first success.
	if fetcher.BarCalls["AAA"] != 1 || fetcher.BarCalls["BBB"] != 1 {
		t.Errorf("expected one bars fetch per symbol, got %v", fetcher.BarCalls)
	}
	if fetcher.BarCalls["^BVSP"] != 1 {
		t.Errorf("expected one benchmark fetch per pass, got %d", fetcher.BarCalls["^BVSP"])
	}
}

func TestEvaluate_BenchmarkFailureRetriedNextSymbol(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	good := testBars(t, start, 100, 102, 99, 103, 101)
	bench := testBars(t, start, 1000, 1020, 990, 1030, 1010)

	fetcher := &flakyBenchFetcher{
		inner: &collector.MockFetcher{
			BySymbol: map[string][]model.OHLCV{
				"AAA":   good,
				"BBB":   good,
				"^BVSP": bench,
			},
			TrailingPE: 9.9,
		},
		benchSymbol: "^BVSP",
		failFirst:   1,
	}

	ev := newTestEvaluator(t, fetcher, Config{BatchSize: 10})
	results := ev.Evaluate([]string{"AAA", "BBB"})

	// The benchmark fetch fails for AAA, so only AAA's beta degrades; the
	// retry for BBB succeeds.
	if results[0].Beta.Valid {
		t.Errorf("AAA: expected absent beta after benchmark failure, got %+v", results[0].Beta)
	}
	if !results[1].Beta.Valid {
		t.Errorf("BBB: expected computed beta after benchmark retry, got %+v", results[1].Beta)
	}
	// Other metrics of AAA are unaffected by the benchmark failure.
	if !results[0].Sharpe.Valid || !results[0].Momentum.Valid {
		t.Errorf("AAA: expected sharpe/momentum despite benchmark failure, got %+v", results[0])
	}
}

// errFetcher fails bars fetches for a single symbol and delegates the rest.
type errFetcher struct {
	inner      *collector.MockFetcher
	failSymbol string
}

func (f *errFetcher) Name() string { return "err" }

func (f *errFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if symbol == f.failSymbol {
		return nil, errors.New("provider unavailable")
	}
	return f.inner.FetchDailyBars(symbol, days)
}

func (f *errFetcher) FetchTrailingPE(symbol string) (float64, error) {
	if symbol == f.failSymbol {
		return 0, errors.New("provider unavailable")
	}
	return f.inner.FetchTrailingPE(symbol)
}

// flakyBenchFetcher fails the first N fetches of the benchmark symbol.
type flakyBenchFetcher struct {
	inner       *collector.MockFetcher
	benchSymbol string
	failFirst   int
}

func (f *flakyBenchFetcher) Name() string { return "flaky" }

func (f *flakyBenchFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if symbol == f.benchSymbol && f.failFirst > 0 {
		f.failFirst--
		return nil, errors.New("rate limited")
	}
	return f.inner.FetchDailyBars(symbol, days)
}

func (f *flakyBenchFetcher) FetchTrailingPE(symbol string) (float64, error) {
	return f.inner.FetchTrailingPE(symbol)
}
