package calculator

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"

	"AssetScreener/internal/model"
)

// Beta computes the beta of an asset relative to a benchmark index.
// Both series are aligned by calendar date (inner join) before computing
// period-over-period percentage returns, so bars present in only one of
// the two series are discarded. Beta is the sample covariance of the two
// return series divided by the sample variance of the benchmark returns.
func Beta(assetBars, benchBars []model.OHLCV) (float64, error) {
	if len(assetBars) == 0 || len(benchBars) == 0 {
		return 0, errors.New("empty price series")
	}

	assetCloses, benchCloses := alignByDate(assetBars, benchBars)
	assetReturns := PercentChanges(assetCloses)
	benchReturns := PercentChanges(benchCloses)
	// Sample statistics need at least two returns; below that covariance
	// and variance are undefined.
	if len(assetReturns) < 2 || len(benchReturns) < 2 {
		return 0, errors.New("not enough overlapping returns after alignment")
	}

	covariance := stat.Covariance(assetReturns, benchReturns, nil)
	variance := stat.Variance(benchReturns, nil)
	if variance == 0 {
		return 0, errors.New("benchmark variance is zero")
	}
	return covariance / variance, nil
}

// alignByDate inner-joins two bar series on calendar date and returns the
// matched close prices in ascending date order.
func alignByDate(assetBars, benchBars []model.OHLCV) (assetCloses, benchCloses []float64) {
	const dateLayout = "2006-01-02"

	benchByDate := make(map[string]float64, len(benchBars))
	for _, b := range benchBars {
		benchByDate[b.Time.Format(dateLayout)] = b.Close
	}

	type aligned struct {
		date         string
		asset, bench float64
	}
	pairs := make([]aligned, 0, len(assetBars))
	for _, b := range assetBars {
		date := b.Time.Format(dateLayout)
		if bench, ok := benchByDate[date]; ok {
			pairs = append(pairs, aligned{date: date, asset: b.Close, bench: bench})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].date < pairs[j].date })

	assetCloses = make([]float64, len(pairs))
	benchCloses = make([]float64, len(pairs))
	for i, p := range pairs {
		assetCloses[i] = p.asset
		benchCloses[i] = p.bench
	}
	return assetCloses, benchCloses
}
