package calculator

import "AssetScreener/internal/model"

// PercentChanges computes period-over-period percentage returns from an
// ordered value series. The first point has no predecessor and is dropped,
// so the result has len(values)-1 entries; fewer than two input values
// yield nil.
func PercentChanges(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	changes := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		changes[i-1] = (values[i] - values[i-1]) / values[i-1]
	}
	return changes
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func extractVolumes(bars []model.OHLCV) []float64 {
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		volumes[i] = b.Volume
	}
	return volumes
}
