package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Node struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Type          string         `gorm:"type:varchar(16);not null;index"`
	ParentId      *uuid.UUID     `gorm:"type:uuid;index"`
	Content       string         `gorm:"type:text"`
	ResourceType  string         `gorm:"type:varchar(32)"`
	Tags          datatypes.JSON `gorm:"type:jsonb"`
	Pinned        bool           `gorm:"default:false"`
	Progress      int            `gorm:"default:0"`
	Prerequisites datatypes.JSON `gorm:"type:jsonb"`
	LastStudied   *time.Time
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Node) TableName() string {
	return "nodes"
}
