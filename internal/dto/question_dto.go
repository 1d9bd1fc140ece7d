package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuestionFilterRequest struct {
	Topic      string `query:"topic"`
	Subtopic   string `query:"subtopic"`
	Pattern    string `query:"pattern"`
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Mastery    string `query:"mastery" validate:"omitempty,oneof=untouched attempted solved understood mastered"`
	Solved     *bool  `query:"solved"`
	View       string `query:"view" validate:"omitempty,oneof=list tree"`
}

type QuestionResponse struct {
	Id            uuid.UUID  `json:"id"`
	Sno           int        `json:"sno"`
	Topic         string     `json:"topic"`
	Subtopic      string     `json:"subtopic"`
	Pattern       string     `json:"pattern"`
	Problem       string     `json:"problem"`
	Description   string     `json:"description,omitempty"`
	Difficulty    string     `json:"difficulty"`
	Link          string     `json:"link,omitempty"`
	IsSolved      bool       `json:"is_solved"`
	Mastery       string     `json:"mastery"`
	Code          string     `json:"code,omitempty"`
	SolvedBy      string     `json:"solved_by,omitempty"`
	LastPracticed *time.Time `json:"last_practiced"`
	NextReview    *time.Time `json:"next_review"`
	InlineNotes   string     `json:"inline_notes,omitempty"`
}

// Grouped "tree" view: topic -> subtopic -> pattern buckets, bucket order
// following sno order of first appearance.
type PatternGroup struct {
	Pattern   string              `json:"pattern"`
	Questions []*QuestionResponse `json:"questions"`
}

type SubtopicGroup struct {
	Subtopic string          `json:"subtopic"`
	Patterns []*PatternGroup `json:"patterns"`
}

type TopicGroup struct {
	Topic     string           `json:"topic"`
	Subtopics []*SubtopicGroup `json:"subtopics"`
}

type UpdateQuestionRequest struct {
	Id          uuid.UUID
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Code        *string `json:"code"`
	SolvedBy    *string `json:"solved_by"`
	InlineNotes *string `json:"inline_notes"`
}

type UpdateQuestionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SetMasteryRequest struct {
	Id       uuid.UUID
	Mastery  string  `json:"mastery" validate:"required,oneof=untouched attempted solved understood mastered"`
	Code     *string `json:"code"`
	SolvedBy *string `json:"solved_by"`
}

type SetMasteryResponse struct {
	Id            uuid.UUID `json:"id"`
	Mastery       string    `json:"mastery"`
	LastPracticed time.Time `json:"last_practiced"`
	NextReview    time.Time `json:"next_review"`
}
