package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studyhub-be/internal/entity"
	"studyhub-be/internal/mapper"
	"studyhub-be/internal/model"
	"studyhub-be/internal/repository/contract"
	"studyhub-be/internal/repository/specification"
)

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionMapper(),
	}
}

func (r *QuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *entity.Question) error {
	m := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuestionRepositoryImpl) CreateBulk(ctx context.Context, questions []*entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	models := make([]*model.Question, len(questions))
	for i, q := range questions {
		models[i] = r.mapper.ToModel(q)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 100).Error
}

func (r *QuestionRepositoryImpl) Update(ctx context.Context, question *entity.Question) error {
	m := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuestionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	var m model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var models []*model.Question
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Question{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *QuestionRepositoryImpl) CountByMastery(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "mastery")
}

func (r *QuestionRepositoryImpl) CountByDifficulty(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "difficulty")
}

func (r *QuestionRepositoryImpl) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Select(column + " as key, count(*) as count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}
