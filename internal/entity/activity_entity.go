package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id              uuid.UUID
	NodeId          uuid.UUID
	DurationSeconds int
	RecordedAt      time.Time
}
