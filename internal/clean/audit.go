package clean

import (
	"time"

	"github.com/google/uuid"
)

// Audit accumulates what one pipeline run changed or removed. Each stage
// adds to its counters while the run is in flight; the record is immutable
// once Run returns it.
type Audit struct {
	RunID     string        `json:"runId"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`

	RowsIn  int `json:"rowsIn"`
	RowsOut int `json:"rowsOut"`

	CellsCoercedToNull     int `json:"cellsCoercedToNull"`
	CellsOutlierRemapped   int `json:"cellsOutlierRemapped"`
	CellsSignNormalized    int `json:"cellsSignNormalized"`
	RowsRemovedPlaceholder int `json:"rowsRemovedPlaceholder"`
	RowsRemovedNullPolicy  int `json:"rowsRemovedNullPolicy"`
}

// RowsRemoved returns the total number of rows dropped by the run.
func (a *Audit) RowsRemoved() int {
	return a.RowsRemovedPlaceholder + a.RowsRemovedNullPolicy
}

func newAudit(rowsIn int) *Audit {
	return &Audit{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		RowsIn:    rowsIn,
	}
}

func (a *Audit) finish(rowsOut int) {
	a.RowsOut = rowsOut
	a.Duration = time.Since(a.StartedAt)
}
