package entity

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type Question struct {
	Id            uuid.UUID
	Sno           int
	Topic         string
	Subtopic      string
	Pattern       string
	Problem       string
	Description   string
	Difficulty    Difficulty
	Link          string
	IsSolved      bool
	Mastery       string
	Code          string
	SolvedBy      string
	LastPracticed *time.Time
	NextReview    *time.Time
	InlineNotes   string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
