package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NodeId          uuid.UUID `gorm:"type:uuid;not null;index"`
	DurationSeconds int       `gorm:"not null"`
	RecordedAt      time.Time `gorm:"not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
