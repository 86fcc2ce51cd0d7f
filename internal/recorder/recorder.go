package recorder

import (
	"time"

	"GrowthCalc/internal/model"
)

// Source identifies what triggered a projection.
type Source string

const (
	SourceAPI      Source = "API"
	SourceTelegram Source = "TELEGRAM"
	SourceSchedule Source = "SCHEDULE"
)

// ProjectionRecord holds one computed projection for history.
type ProjectionRecord struct {
	ID        int64                  `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Source    Source                 `json:"source"`
	Input     model.ProjectionInput  `json:"input"`
	Result    model.ProjectionResult `json:"result"`
}

// Recorder persists projection history for later analysis.
type Recorder interface {
	RecordProjection(rec *ProjectionRecord) error
	// RecentProjections returns the newest records first, without yearly rows.
	RecentProjections(limit int) ([]ProjectionRecord, error)
	Close() error
}
