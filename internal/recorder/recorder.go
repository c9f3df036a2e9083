package recorder

import (
	"time"

	"AssetScreener/internal/model"
)

// Recorder persists screening runs for later analysis.
type Recorder interface {
	RecordRun(runAt time.Time, results []model.AssetMetrics) error
	Close() error
}
