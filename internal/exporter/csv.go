package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/guregu/null/v6"

	"AssetScreener/internal/model"
)

// Header is the column contract of the exported table.
var Header = []string{"ticker", "liquidity", "beta", "sharpe", "pe_ratio", "momentum"}

// WriteCSV writes one row per asset to path, creating or truncating the
// file. Absent metrics serialize as empty cells. Any write failure is
// returned to the caller; there is no partial-result recovery.
func WriteCSV(path string, results []model.AssetMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		record := []string{
			r.Symbol,
			formatFloat(r.Liquidity),
			formatNull(r.Beta),
			formatNull(r.Sharpe),
			formatNull(r.PERatio),
			formatNull(r.Momentum),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", r.Symbol, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNull(v null.Float) string {
	if !v.Valid {
		return ""
	}
	return formatFloat(v.Float64)
}
