package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Sno           int       `gorm:"uniqueIndex;not null"`
	Topic         string    `gorm:"type:varchar(128);index"`
	Subtopic      string    `gorm:"type:varchar(128);index"`
	Pattern       string    `gorm:"type:varchar(128);index"`
	Problem       string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Difficulty    string    `gorm:"type:varchar(8);index"`
	Link          string    `gorm:"type:varchar(512)"`
	IsSolved      bool      `gorm:"default:false"`
	Mastery       string    `gorm:"type:varchar(16);default:'untouched';index"`
	Code          string    `gorm:"type:text"`
	SolvedBy      string    `gorm:"type:varchar(64)"`
	LastPracticed *time.Time
	NextReview    *time.Time `gorm:"index"`
	InlineNotes   string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}
