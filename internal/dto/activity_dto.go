package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityBeaconRequest is fire-and-forget: the controller publishes and
// returns 202 without waiting for the log write.
type ActivityBeaconRequest struct {
	NodeId          uuid.UUID `json:"node_id" validate:"required"`
	DurationSeconds int       `json:"duration_seconds" validate:"required,min=1"`
}

// ActivityRecordedMessage is the pubsub payload consumed by the activity
// consumer service.
type ActivityRecordedMessage struct {
	NodeId          uuid.UUID `json:"node_id"`
	DurationSeconds int       `json:"duration_seconds"`
	RecordedAt      time.Time `json:"recorded_at"`
}

type ActivitySummaryResponse struct {
	NodeId       uuid.UUID  `json:"node_id"`
	TotalSeconds int        `json:"total_seconds"`
	LastRecorded *time.Time `json:"last_recorded"`
}
