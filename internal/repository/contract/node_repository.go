package contract

import (
	"context"

	"github.com/google/uuid"

	"studyhub-be/internal/entity"
	"studyhub-be/internal/repository/specification"
)

type NodeRepository interface {
	Create(ctx context.Context, node *entity.Node) error
	Update(ctx context.Context, node *entity.Node) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteBatch removes a whole id set in one statement; cascade delete
	// runs it inside a unit-of-work transaction.
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Node, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Node, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByType(ctx context.Context) (map[string]int64, error)
}
