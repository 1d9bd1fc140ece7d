package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TopicId   string         `gorm:"type:varchar(128);index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text"`
	Kind      string         `gorm:"type:varchar(16);default:'note'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
