package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicImportCompletedV1 = "churn.import.completed.v1"
	EventVersionV1         = 1
)

// ImportCompletedV1 is published after every import run, successful or not.
type ImportCompletedV1 struct {
	EventID        uuid.UUID `json:"event_id"`
	EventVersion   int       `json:"event_version"`
	RequestID      string    `json:"request_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CSVType        string    `json:"csv_type"`
	Inserted       int       `json:"inserted"`
	Skipped        int       `json:"skipped"`
	BatchErrors    int       `json:"batch_errors"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}
