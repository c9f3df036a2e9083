package report

import (
	"fmt"
	"strings"
	"time"

	"AssetScreener/internal/model"
)

// FormatRunSummary renders a human-readable summary of one screening run
// for the console log. It is informational only and not part of the data
// contract.
func FormatRunSummary(results []model.AssetMetrics, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("screening run | %s\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("  symbols screened: %d in %s\n", len(results), elapsed.Round(time.Millisecond)))

	var withVolume, beta, sharpe, pe, momentum int
	for _, r := range results {
		if r.Liquidity > 0 {
			withVolume++
		}
		if r.Beta.Valid {
			beta++
		}
		if r.Sharpe.Valid {
			sharpe++
		}
		if r.PERatio.Valid {
			pe++
		}
		if r.Momentum.Valid {
			momentum++
		}
	}
	b.WriteString(fmt.Sprintf("  with volume data: %d\n", withVolume))
	b.WriteString(fmt.Sprintf("  beta: %d | sharpe: %d | pe_ratio: %d | momentum: %d\n",
		beta, sharpe, pe, momentum))
	return b.String()
}
