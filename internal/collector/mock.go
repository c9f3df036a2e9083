package collector

import (
	"fmt"
	"time"

	"AssetScreener/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price      float64
	DailyData  []model.OHLCV
	TrailingPE float64

	// BySymbol overrides DailyData per symbol when set. A nil entry means
	// the provider has no data for that symbol.
	BySymbol map[string][]model.OHLCV

	// PEBySymbol overrides TrailingPE per symbol when set. A missing entry
	// means the provider has no P/E figure for that symbol.
	PEBySymbol map[string]float64

	// Err is returned from every fetch when set.
	Err error

	// BarCalls counts FetchDailyBars invocations per symbol.
	BarCalls map[string]int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if m.BarCalls == nil {
		m.BarCalls = make(map[string]int)
	}
	m.BarCalls[symbol]++

	if m.Err != nil {
		return nil, m.Err
	}
	if m.BySymbol != nil {
		return m.BySymbol[symbol], nil
	}
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return GenerateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchTrailingPE(symbol string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.PEBySymbol != nil {
		pe, ok := m.PEBySymbol[symbol]
		if !ok {
			return 0, fmt.Errorf("no trailing P/E for %s", symbol)
		}
		return pe, nil
	}
	if m.TrailingPE == 0 {
		return 0, fmt.Errorf("no trailing P/E for %s", symbol)
	}
	return m.TrailingPE, nil
}

// GenerateMockBars produces a gently trending daily series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
