package calculator

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"AssetScreener/internal/model"
)

// TradingDaysPerYear converts an annual risk-free rate to a daily one.
const TradingDaysPerYear = 252

// Sharpe computes the daily Sharpe ratio from close prices: the mean daily
// return minus the daily risk-free rate, divided by the sample standard
// deviation of returns. A series with zero volatility has no defined Sharpe
// ratio and returns an error.
func Sharpe(bars []model.OHLCV, annualRiskFree float64) (float64, error) {
	returns := PercentChanges(extractCloses(bars))
	if len(returns) < 2 {
		return 0, errors.New("not enough data for return series")
	}

	mean := stat.Mean(returns, nil)
	volatility := stat.StdDev(returns, nil)
	if volatility == 0 {
		return 0, errors.New("zero volatility in return series")
	}
	return (mean - annualRiskFree/TradingDaysPerYear) / volatility, nil
}
