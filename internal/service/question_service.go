package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyhub-be/internal/apperror"
	"studyhub-be/internal/dto"
	"studyhub-be/internal/entity"
	"studyhub-be/internal/repository/specification"
	"studyhub-be/internal/repository/unitofwork"
	"studyhub-be/pkg/scheduler"
)

type IQuestionService interface {
	List(ctx context.Context, filter *dto.QuestionFilterRequest) ([]*dto.QuestionResponse, error)
	GroupedList(ctx context.Context, filter *dto.QuestionFilterRequest) ([]*dto.TopicGroup, error)
	ReviewQueue(ctx context.Context, now time.Time) ([]*dto.QuestionResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error)
	Update(ctx context.Context, req *dto.UpdateQuestionRequest) (*dto.UpdateQuestionResponse, error)
	SetMastery(ctx context.Context, req *dto.SetMasteryRequest) (*dto.SetMasteryResponse, error)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory) IQuestionService {
	return &questionService{
		uowFactory: uowFactory,
	}
}

func filterSpecs(filter *dto.QuestionFilterRequest) []specification.Specification {
	specs := []specification.Specification{}
	if filter.Topic != "" {
		specs = append(specs, specification.ByTopic{Topic: filter.Topic})
	}
	if filter.Subtopic != "" {
		specs = append(specs, specification.BySubtopic{Subtopic: filter.Subtopic})
	}
	if filter.Pattern != "" {
		specs = append(specs, specification.ByPattern{Pattern: filter.Pattern})
	}
	if filter.Difficulty != "" {
		specs = append(specs, specification.ByDifficulty{Difficulty: filter.Difficulty})
	}
	if filter.Mastery != "" {
		specs = append(specs, specification.ByMastery{Mastery: filter.Mastery})
	}
	if filter.Solved != nil {
		specs = append(specs, specification.BySolved{Solved: *filter.Solved})
	}
	specs = append(specs, specification.OrderBy{Field: "sno"})
	return specs
}

func (s *questionService) List(ctx context.Context, filter *dto.QuestionFilterRequest) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx, filterSpecs(filter)...)
	if err != nil {
		return nil, err
	}

	return toQuestionResponses(questions), nil
}

// GroupedList buckets the filtered questions topic -> subtopic -> pattern,
// bucket order following the sno order of first appearance.
func (s *questionService) GroupedList(ctx context.Context, filter *dto.QuestionFilterRequest) ([]*dto.TopicGroup, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx, filterSpecs(filter)...)
	if err != nil {
		return nil, err
	}

	topics := make([]*dto.TopicGroup, 0)
	topicIdx := map[string]*dto.TopicGroup{}
	subtopicIdx := map[string]*dto.SubtopicGroup{}
	patternIdx := map[string]*dto.PatternGroup{}

	for _, q := range questions {
		topic, ok := topicIdx[q.Topic]
		if !ok {
			topic = &dto.TopicGroup{Topic: q.Topic, Subtopics: make([]*dto.SubtopicGroup, 0)}
			topicIdx[q.Topic] = topic
			topics = append(topics, topic)
		}

		subKey := q.Topic + "\x00" + q.Subtopic
		subtopic, ok := subtopicIdx[subKey]
		if !ok {
			subtopic = &dto.SubtopicGroup{Subtopic: q.Subtopic, Patterns: make([]*dto.PatternGroup, 0)}
			subtopicIdx[subKey] = subtopic
			topic.Subtopics = append(topic.Subtopics, subtopic)
		}

		patKey := subKey + "\x00" + q.Pattern
		pattern, ok := patternIdx[patKey]
		if !ok {
			pattern = &dto.PatternGroup{Pattern: q.Pattern, Questions: make([]*dto.QuestionResponse, 0)}
			patternIdx[patKey] = pattern
			subtopic.Patterns = append(subtopic.Patterns, pattern)
		}

		pattern.Questions = append(pattern.Questions, toQuestionResponse(q))
	}

	return topics, nil
}

func (s *questionService) ReviewQueue(ctx context.Context, now time.Time) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.DueForReview{Now: now},
		specification.OrderBy{Field: "next_review"},
	)
	if err != nil {
		return nil, err
	}

	return toQuestionResponses(questions), nil
}

func (s *questionService) Show(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question", id.String())
	}

	return toQuestionResponse(question), nil
}

func (s *questionService) Update(ctx context.Context, req *dto.UpdateQuestionRequest) (*dto.UpdateQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question", req.Id.String())
	}

	if req.Description != nil {
		question.Description = *req.Description
	}
	if req.Link != nil {
		question.Link = *req.Link
	}
	if req.Code != nil {
		question.Code = *req.Code
	}
	if req.SolvedBy != nil {
		question.SolvedBy = *req.SolvedBy
	}
	if req.InlineNotes != nil {
		question.InlineNotes = *req.InlineNotes
	}

	now := time.Now()
	question.UpdatedAt = &now

	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}

	return &dto.UpdateQuestionResponse{
		Id: question.Id,
	}, nil
}

// SetMastery is the only scheduling transition: every call stamps
// lastPracticed and recomputes nextReview from the offset table.
func (s *questionService) SetMastery(ctx context.Context, req *dto.SetMasteryRequest) (*dto.SetMasteryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question", req.Id.String())
	}

	if !scheduler.Valid(req.Mastery) {
		return nil, apperror.ValidationFailed("mastery", "unknown mastery level")
	}

	now := time.Now()
	nextReview, err := scheduler.NextReview(now, req.Mastery)
	if err != nil {
		return nil, err
	}

	question.Mastery = req.Mastery
	question.IsSolved = scheduler.Solved(req.Mastery)
	question.LastPracticed = &now
	question.NextReview = &nextReview
	question.UpdatedAt = &now
	if req.Code != nil {
		question.Code = *req.Code
	}
	if req.SolvedBy != nil {
		question.SolvedBy = *req.SolvedBy
	}

	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}

	return &dto.SetMasteryResponse{
		Id:            question.Id,
		Mastery:       question.Mastery,
		LastPracticed: now,
		NextReview:    nextReview,
	}, nil
}

func toQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
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
	}
}

func toQuestionResponses(questions []*entity.Question) []*dto.QuestionResponse {
	result := make([]*dto.QuestionResponse, len(questions))
	for i, q := range questions {
		result[i] = toQuestionResponse(q)
	}
	return result
}
