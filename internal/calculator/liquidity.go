package calculator

import (
	"gonum.org/v1/gonum/stat"

	"AssetScreener/internal/model"
)

// Liquidity returns the arithmetic mean of daily traded volume.
// An empty series yields 0 rather than an error: no trading data means
// no liquidity, which is a meaningful result in itself.
func Liquidity(bars []model.OHLCV) float64 {
	if len(bars) == 0 {
		return 0
	}
	return stat.Mean(extractVolumes(bars), nil)
}
