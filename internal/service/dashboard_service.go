package service

import (
	"context"
	"time"

	"studyhub-be/internal/dto"
	"studyhub-be/internal/pkg/logger"
	"studyhub-be/internal/repository/specification"
	"studyhub-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalNodes, err := uow.NodeRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	nodesByType, err := uow.NodeRepository().CountByType(ctx)
	if err != nil {
		return nil, err
	}

	pinnedNodes, err := uow.NodeRepository().Count(ctx, specification.Filter("pinned", true))
	if err != nil {
		return nil, err
	}

	totalQuestions, err := uow.QuestionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	solvedQuestions, err := uow.QuestionRepository().Count(ctx, specification.BySolved{Solved: true})
	if err != nil {
		return nil, err
	}

	byMastery, err := uow.QuestionRepository().CountByMastery(ctx)
	if err != nil {
		return nil, err
	}

	byDifficulty, err := uow.QuestionRepository().CountByDifficulty(ctx)
	if err != nil {
		return nil, err
	}

	dueReviews, err := uow.QuestionRepository().Count(ctx, specification.DueForReview{Now: time.Now()})
	if err != nil {
		return nil, err
	}

	totalDocuments, err := uow.DocumentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	totalStudySeconds, err := uow.ActivityRepository().SumDuration(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("dashboard", "Computed dashboard stats", map[string]interface{}{
		"total_nodes":     totalNodes,
		"total_questions": totalQuestions,
	})

	return &dto.DashboardStatsResponse{
		TotalNodes:            int(totalNodes),
		NodesByType:           toIntMap(nodesByType),
		PinnedNodes:           int(pinnedNodes),
		TotalQuestions:        int(totalQuestions),
		SolvedQuestions:       int(solvedQuestions),
		QuestionsByMastery:    toIntMap(byMastery),
		QuestionsByDifficulty: toIntMap(byDifficulty),
		DueReviews:            int(dueReviews),
		TotalDocuments:        int(totalDocuments),
		TotalStudySeconds:     int(totalStudySeconds),
	}, nil
}

func toIntMap(counts map[string]int64) map[string]int {
	result := make(map[string]int, len(counts))
	for k, v := range counts {
		result[k] = int(v)
	}
	return result
}
