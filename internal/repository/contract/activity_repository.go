package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyhub-be/internal/entity"
)

type ActivityRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	DeleteByNodeIds(ctx context.Context, nodeIds []uuid.UUID) error
	FindByNodeId(ctx context.Context, nodeId uuid.UUID) ([]*entity.ActivityLog, error)
	SumDuration(ctx context.Context) (int64, error)
	SumDurationByNode(ctx context.Context, nodeId uuid.UUID) (int64, error)
	LastRecordedAt(ctx context.Context, nodeId uuid.UUID) (*time.Time, error)
}
