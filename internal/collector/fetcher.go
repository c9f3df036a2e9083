package collector

import "AssetScreener/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns up to `days` daily bars in chronological order.
	// An empty slice with a nil error means the provider has no data.
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	// FetchTrailingPE returns the trailing price-to-earnings ratio, or an
	// error when the provider does not publish one for the symbol.
	FetchTrailingPE(symbol string) (float64, error)
	Name() string
}
