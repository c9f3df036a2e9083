package calculator

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"AssetScreener/internal/model"
)

// Momentum computes the arithmetic sum of period-over-period percentage
// returns over the series. The returns are summed, not compounded, so a
// constant-price series scores exactly 0.
func Momentum(bars []model.OHLCV) (float64, error) {
	returns := PercentChanges(extractCloses(bars))
	if len(returns) == 0 {
		return 0, errors.New("not enough data for return series")
	}
	return floats.Sum(returns), nil
}
