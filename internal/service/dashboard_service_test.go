package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub-be/internal/entity"
	"studyhub-be/pkg/scheduler"
)

func TestDashboardServiceGetStats(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewDashboardService(uow, nopLogger{})
	ctx := context.Background()

	syllabus := seedNode(uow, "DSA", entity.NodeTypeSyllabus, nil)
	folder := seedNode(uow, "Arrays", entity.NodeTypeFolder, syllabus)
	folder.Pinned = true
	seedNode(uow, "Two Sum", entity.NodeTypeFile, folder)
	seedNode(uow, "Sliding Window", entity.NodeTypeFile, folder)

	solved := seedQuestion(uow, 1, "Arrays", "Hashing", "Hash Map", "Two Sum")
	solved.Mastery = scheduler.MasterySolved
	solved.IsSolved = true
	overdue := time.Now().AddDate(0, 0, -1)
	solved.NextReview = &overdue

	fresh := seedQuestion(uow, 2, "Trees", "Traversal", "BFS", "Level Order")
	fresh.Difficulty = entity.DifficultyEasy

	uow.documentRepo.documents = []*entity.Document{
		{Id: uuid.New(), TopicId: "arrays", Title: "Notes", Kind: entity.DocumentKindNote},
	}
	uow.activityRepo.logs = []*entity.ActivityLog{
		{Id: uuid.New(), NodeId: folder.Id, DurationSeconds: 1200, RecordedAt: time.Now()},
		{Id: uuid.New(), NodeId: folder.Id, DurationSeconds: 600, RecordedAt: time.Now()},
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalNodes)
	assert.Equal(t, map[string]int{"syllabus": 1, "folder": 1, "file": 2}, stats.NodesByType)
	assert.Equal(t, 1, stats.PinnedNodes)

	assert.Equal(t, 2, stats.TotalQuestions)
	assert.Equal(t, 1, stats.SolvedQuestions)
	assert.Equal(t, 1, stats.QuestionsByMastery[scheduler.MasterySolved])
	assert.Equal(t, 1, stats.QuestionsByMastery[scheduler.MasteryUntouched])
	assert.Equal(t, 1, stats.QuestionsByDifficulty["Medium"])
	assert.Equal(t, 1, stats.QuestionsByDifficulty["Easy"])
	assert.Equal(t, 1, stats.DueReviews)

	assert.Equal(t, 1, stats.TotalDocuments)
	assert.Equal(t, 1800, stats.TotalStudySeconds)
}

func TestDashboardServiceEmptyState(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewDashboardService(uow, nopLogger{})

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalNodes)
	assert.Zero(t, stats.TotalQuestions)
	assert.Zero(t, stats.TotalStudySeconds)
	assert.Empty(t, stats.NodesByType)
}
