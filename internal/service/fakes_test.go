package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"studyhub-be/internal/entity"
	"studyhub-be/internal/repository/contract"
	"studyhub-be/internal/repository/specification"
	"studyhub-be/internal/repository/unitofwork"
)

// The fakes below back the service tests with in-memory state. They
// interpret the specification values structurally instead of building SQL,
// which keeps the service tests free of a database.

type fakeNodeRepository struct {
	nodes []*entity.Node

	deleteBatchErr error
	deleted        [][]uuid.UUID
}

func (r *fakeNodeRepository) Create(_ context.Context, node *entity.Node) error {
	copied := *node
	r.nodes = append(r.nodes, &copied)
	return nil
}

func (r *fakeNodeRepository) Update(_ context.Context, node *entity.Node) error {
	for i, existing := range r.nodes {
		if existing.Id == node.Id {
			copied := *node
			r.nodes[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeNodeRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.DeleteBatch(context.Background(), []uuid.UUID{id})
}

func (r *fakeNodeRepository) DeleteBatch(_ context.Context, ids []uuid.UUID) error {
	if r.deleteBatchErr != nil {
		return r.deleteBatchErr
	}
	r.deleted = append(r.deleted, ids)
	drop := map[uuid.UUID]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.nodes[:0]
	for _, n := range r.nodes {
		if !drop[n.Id] {
			kept = append(kept, n)
		}
	}
	r.nodes = kept
	return nil
}

func (r *fakeNodeRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Node, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeNodeRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Node, error) {
	var result []*entity.Node
	for _, n := range r.nodes {
		if nodeMatches(n, specs) {
			copied := *n
			result = append(result, &copied)
		}
	}
	for _, spec := range specs {
		if _, ok := spec.(specification.PinnedFirst); ok {
			sort.SliceStable(result, func(i, j int) bool {
				return result[i].Pinned && !result[j].Pinned
			})
		}
	}
	return result, nil
}

func (r *fakeNodeRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func (r *fakeNodeRepository) CountByType(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, n := range r.nodes {
		counts[string(n.Type)]++
	}
	return counts, nil
}

func nodeMatches(n *entity.Node, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByParentID:
			if s.ParentID == nil {
				if n.ParentId != nil {
					return false
				}
			} else if n.ParentId == nil || *n.ParentId != *s.ParentID {
				return false
			}
		case specification.ByNodeType:
			if string(n.Type) != s.Type {
				return false
			}
		case specification.FilterBy:
			if s.Field == "pinned" && n.Pinned != s.Value.(bool) {
				return false
			}
		}
	}
	return true
}

type fakeQuestionRepository struct {
	questions []*entity.Question
}

func (r *fakeQuestionRepository) Create(_ context.Context, q *entity.Question) error {
	copied := *q
	r.questions = append(r.questions, &copied)
	return nil
}

func (r *fakeQuestionRepository) CreateBulk(ctx context.Context, qs []*entity.Question) error {
	for _, q := range qs {
		if err := r.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeQuestionRepository) Update(_ context.Context, q *entity.Question) error {
	for i, existing := range r.questions {
		if existing.Id == q.Id {
			copied := *q
			r.questions[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeQuestionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeQuestionRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var result []*entity.Question
	for _, q := range r.questions {
		if questionMatches(q, specs) {
			copied := *q
			result = append(result, &copied)
		}
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok {
			switch s.Field {
			case "sno":
				sort.SliceStable(result, func(i, j int) bool { return result[i].Sno < result[j].Sno })
			case "next_review":
				sort.SliceStable(result, func(i, j int) bool {
					a, b := result[i].NextReview, result[j].NextReview
					if a == nil || b == nil {
						return b == nil && a != nil
					}
					return a.Before(*b)
				})
			}
		}
	}
	return result, nil
}

func (r *fakeQuestionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func (r *fakeQuestionRepository) CountByMastery(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, q := range r.questions {
		counts[q.Mastery]++
	}
	return counts, nil
}

func (r *fakeQuestionRepository) CountByDifficulty(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, q := range r.questions {
		counts[string(q.Difficulty)]++
	}
	return counts, nil
}

func questionMatches(q *entity.Question, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if q.Id != s.ID {
				return false
			}
		case specification.ByTopic:
			if q.Topic != s.Topic {
				return false
			}
		case specification.BySubtopic:
			if q.Subtopic != s.Subtopic {
				return false
			}
		case specification.ByPattern:
			if q.Pattern != s.Pattern {
				return false
			}
		case specification.ByDifficulty:
			if string(q.Difficulty) != s.Difficulty {
				return false
			}
		case specification.ByMastery:
			if q.Mastery != s.Mastery {
				return false
			}
		case specification.BySolved:
			if q.IsSolved != s.Solved {
				return false
			}
		case specification.DueForReview:
			if q.NextReview == nil || q.NextReview.After(s.Now) || q.Mastery == "untouched" {
				return false
			}
		}
	}
	return true
}

type fakeDocumentRepository struct {
	documents []*entity.Document
}

func (r *fakeDocumentRepository) Create(_ context.Context, d *entity.Document) error {
	copied := *d
	r.documents = append(r.documents, &copied)
	return nil
}

func (r *fakeDocumentRepository) Update(_ context.Context, d *entity.Document) error {
	for i, existing := range r.documents {
		if existing.Id == d.Id {
			copied := *d
			r.documents[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeDocumentRepository) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.documents[:0]
	for _, d := range r.documents {
		if d.Id != id {
			kept = append(kept, d)
		}
	}
	r.documents = kept
	return nil
}

func (r *fakeDocumentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeDocumentRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	var result []*entity.Document
	for _, d := range r.documents {
		if documentMatches(d, specs) {
			copied := *d
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeDocumentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func documentMatches(d *entity.Document, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if d.Id != s.ID {
				return false
			}
		case specification.ByTopicKey:
			if d.TopicId != s.TopicId {
				return false
			}
		}
	}
	return true
}

type fakeActivityRepository struct {
	logs []*entity.ActivityLog

	deletedNodeIds [][]uuid.UUID
	deleteErr      error
}

func (r *fakeActivityRepository) Create(_ context.Context, log *entity.ActivityLog) error {
	copied := *log
	r.logs = append(r.logs, &copied)
	return nil
}

func (r *fakeActivityRepository) DeleteByNodeIds(_ context.Context, nodeIds []uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedNodeIds = append(r.deletedNodeIds, nodeIds)
	drop := map[uuid.UUID]bool{}
	for _, id := range nodeIds {
		drop[id] = true
	}
	kept := r.logs[:0]
	for _, l := range r.logs {
		if !drop[l.NodeId] {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

func (r *fakeActivityRepository) FindByNodeId(_ context.Context, nodeId uuid.UUID) ([]*entity.ActivityLog, error) {
	var result []*entity.ActivityLog
	for _, l := range r.logs {
		if l.NodeId == nodeId {
			copied := *l
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeActivityRepository) SumDuration(_ context.Context) (int64, error) {
	var total int64
	for _, l := range r.logs {
		total += int64(l.DurationSeconds)
	}
	return total, nil
}

func (r *fakeActivityRepository) SumDurationByNode(_ context.Context, nodeId uuid.UUID) (int64, error) {
	var total int64
	for _, l := range r.logs {
		if l.NodeId == nodeId {
			total += int64(l.DurationSeconds)
		}
	}
	return total, nil
}

func (r *fakeActivityRepository) LastRecordedAt(_ context.Context, nodeId uuid.UUID) (*time.Time, error) {
	var last *time.Time
	for _, l := range r.logs {
		if l.NodeId != nodeId {
			continue
		}
		if last == nil || l.RecordedAt.After(*last) {
			at := l.RecordedAt
			last = &at
		}
	}
	return last, nil
}

// fakeUnitOfWork satisfies both UnitOfWork and RepositoryFactory so a test
// can hand one instance to a service and then assert against the same state.
type fakeUnitOfWork struct {
	nodeRepo     *fakeNodeRepository
	questionRepo *fakeQuestionRepository
	documentRepo *fakeDocumentRepository
	activityRepo *fakeActivityRepository

	began      int
	committed  int
	rolledBack int
	beginErr   error
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		nodeRepo:     &fakeNodeRepository{},
		questionRepo: &fakeQuestionRepository{},
		documentRepo: &fakeDocumentRepository{},
		activityRepo: &fakeActivityRepository{},
	}
}

func (u *fakeUnitOfWork) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return u }

func (u *fakeUnitOfWork) Begin(_ context.Context) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	u.began++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) NodeRepository() contract.NodeRepository         { return u.nodeRepo }
func (u *fakeUnitOfWork) QuestionRepository() contract.QuestionRepository { return u.questionRepo }
func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository { return u.documentRepo }
func (u *fakeUnitOfWork) ActivityRepository() contract.ActivityRepository { return u.activityRepo }

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
