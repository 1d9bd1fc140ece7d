package contract

import (
	"context"

	"studyhub-be/internal/entity"
	"studyhub-be/internal/repository/specification"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	CreateBulk(ctx context.Context, questions []*entity.Question) error
	Update(ctx context.Context, question *entity.Question) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByMastery(ctx context.Context) (map[string]int64, error)
	CountByDifficulty(ctx context.Context) (map[string]int64, error)
}
