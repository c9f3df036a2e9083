package model

import "github.com/guregu/null/v6"

// AssetMetrics holds the computed indicators for one ticker symbol.
// An invalid null.Float means the metric could not be computed; that is
// distinct from a computed zero. Liquidity intentionally defaults to 0
// instead of null when no data is available.
type AssetMetrics struct {
	Symbol    string
	Liquidity float64
	Beta      null.Float
	Sharpe    null.Float
	PERatio   null.Float
	Momentum  null.Float
}
