package mapper

import (
	"time"

	"studyhub-be/internal/entity"
	"studyhub-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	var updatedAt *time.Time
	if !q.UpdatedAt.IsZero() {
		t := q.UpdatedAt
		updatedAt = &t
	}

	return &entity.Question{
		Id:            q.Id,
		Sno:           q.Sno,
		Topic:         q.Topic,
		Subtopic:      q.Subtopic,
		Pattern:       q.Pattern,
		Problem:       q.Problem,
		Description:   q.Description,
		Difficulty:    entity.Difficulty(q.Difficulty),
		Link:          q.Link,
		IsSolved:      q.IsSolved,
		Mastery:       q.Mastery,
		Code:          q.Code,
		SolvedBy:      q.SolvedBy,
		LastPracticed: q.LastPracticed,
		NextReview:    q.NextReview,
		InlineNotes:   q.InlineNotes,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	var updatedAt time.Time
	if q.UpdatedAt != nil {
		updatedAt = *q.UpdatedAt
	}

	return &model.Question{
		Id:            q.Id,
		Sno:           q.Sno,
		Topic:         q.Topic,
		Subtopic:      q.Subtopic,
		Pattern:       q.Pattern,
		Problem:       q.Problem,
		Description:   q.Description,
		Difficulty:    string(q.Difficulty),
		Link:          q.Link,
		IsSolved:      q.IsSolved,
		Mastery:       q.Mastery,
		Code:          q.Code,
		SolvedBy:      q.SolvedBy,
		LastPracticed: q.LastPracticed,
		NextReview:    q.NextReview,
		InlineNotes:   q.InlineNotes,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
