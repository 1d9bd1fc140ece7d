package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByTopic struct {
	Topic string
}

func (s ByTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic = ?", s.Topic)
}

type BySubtopic struct {
	Subtopic string
}

func (s BySubtopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subtopic = ?", s.Subtopic)
}

type ByPattern struct {
	Pattern string
}

func (s ByPattern) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pattern = ?", s.Pattern)
}

type ByDifficulty struct {
	Difficulty string
}

func (s ByDifficulty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("difficulty = ?", s.Difficulty)
}

type ByMastery struct {
	Mastery string
}

func (s ByMastery) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mastery = ?", s.Mastery)
}

type BySolved struct {
	Solved bool
}

func (s BySolved) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_solved = ?", s.Solved)
}

// DueForReview is the review-queue predicate: the review date has elapsed
// and the question has left the untouched state.
type DueForReview struct {
	Now time.Time
}

func (s DueForReview) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("next_review IS NOT NULL AND next_review <= ?", s.Now).
		Where("mastery <> ?", "untouched")
}
