package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhub-be/internal/entity"
	"studyhub-be/internal/mapper"
	"studyhub-be/internal/model"
	"studyhub-be/internal/repository/contract"
	"studyhub-be/internal/repository/scope"
)

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, log *entity.ActivityLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActivityRepositoryImpl) DeleteByNodeIds(ctx context.Context, nodeIds []uuid.UUID) error {
	if len(nodeIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("node_id IN ?", nodeIds).Delete(&model.ActivityLog{}).Error
}

func (r *ActivityRepositoryImpl) FindByNodeId(ctx context.Context, nodeId uuid.UUID) ([]*entity.ActivityLog, error) {
	var models []*model.ActivityLog
	err := r.db.WithContext(ctx).
		Where("node_id = ?", nodeId).
		Scopes(scope.OrderByRecordedAsc).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ActivityRepositoryImpl) SumDuration(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.ActivityLog{}).
		Select("COALESCE(SUM(duration_seconds), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ActivityRepositoryImpl) SumDurationByNode(ctx context.Context, nodeId uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.ActivityLog{}).
		Where("node_id = ?", nodeId).
		Select("COALESCE(SUM(duration_seconds), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ActivityRepositoryImpl) LastRecordedAt(ctx context.Context, nodeId uuid.UUID) (*time.Time, error) {
	var m model.ActivityLog
	err := r.db.WithContext(ctx).
		Where("node_id = ?", nodeId).
		Scopes(scope.OrderByRecordedDesc).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m.RecordedAt, nil
}
