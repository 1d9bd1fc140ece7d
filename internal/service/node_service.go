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
	"studyhub-be/pkg/tree"
	"studyhub-be/pkg/treecache"
)

type INodeService interface {
	GetRoots(ctx context.Context) ([]*dto.NodeResponse, error)
	GetChildren(ctx context.Context, parentId uuid.UUID) ([]*dto.NodeResponse, error)
	GetSubtree(ctx context.Context, id uuid.UUID) (*dto.NodeTreeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NodeResponse, error)
	Create(ctx context.Context, req *dto.CreateNodeRequest) (*dto.CreateNodeResponse, error)
	Update(ctx context.Context, req *dto.UpdateNodeRequest) (*dto.UpdateNodeResponse, error)
	Move(ctx context.Context, req *dto.MoveNodeRequest) (*dto.MoveNodeResponse, error)
	UpdateProgress(ctx context.Context, req *dto.UpdateNodeProgressRequest) (*dto.UpdateNodeProgressResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type nodeService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *treecache.SubtreeCache
}

func NewNodeService(
	uowFactory unitofwork.RepositoryFactory,
	cache *treecache.SubtreeCache,
) INodeService {
	return &nodeService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *nodeService) GetRoots(ctx context.Context) ([]*dto.NodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	nodes, err := uow.NodeRepository().FindAll(ctx,
		specification.ByParentID{ParentID: nil},
		specification.PinnedFirst{},
	)
	if err != nil {
		return nil, err
	}

	return toNodeResponses(nodes), nil
}

func (s *nodeService) GetChildren(ctx context.Context, parentId uuid.UUID) ([]*dto.NodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	parent, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: parentId})
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NotFound("node", parentId.String())
	}

	nodes, err := uow.NodeRepository().FindAll(ctx,
		specification.ByParentID{ParentID: &parentId},
		specification.PinnedFirst{},
	)
	if err != nil {
		return nil, err
	}

	return toNodeResponses(nodes), nil
}

func (s *nodeService) GetSubtree(ctx context.Context, id uuid.UUID) (*dto.NodeTreeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	root, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, apperror.NotFound("node", id.String())
	}

	children, found := s.cache.Get(id)
	if !found {
		all, err := uow.NodeRepository().FindAll(ctx)
		if err != nil {
			return nil, err
		}
		children = tree.Build(all, &id)
		s.cache.Set(id, children)
	}

	res := toTreeResponse(&tree.Node{Node: root, Children: children})
	return res, nil
}

func (s *nodeService) Show(ctx context.Context, id uuid.UUID) (*dto.NodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, apperror.NotFound("node", id.String())
	}

	return toNodeResponse(node), nil
}

func (s *nodeService) Create(ctx context.Context, req *dto.CreateNodeRequest) (*dto.CreateNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	nodeType := entity.NodeType(req.Type)
	if req.ParentId != nil {
		if err := s.requireContainer(ctx, uow, *req.ParentId); err != nil {
			return nil, err
		}
	}
	if !nodeType.IsContainer() && nodeType != entity.NodeTypeFile {
		return nil, apperror.ValidationFailed("type", "unknown node type")
	}
	if nodeType.IsContainer() && (req.Content != "" || req.ResourceType != "") {
		return nil, apperror.ValidationFailed("content", "content is only valid on file nodes")
	}

	node := entity.Node{
		Id:            uuid.New(),
		Title:         req.Title,
		Type:          nodeType,
		ParentId:      req.ParentId,
		Content:       req.Content,
		ResourceType:  req.ResourceType,
		Tags:          req.Tags,
		Pinned:        req.Pinned,
		Prerequisites: req.Prerequisites,
		CreatedAt:     time.Now(),
	}

	if err := uow.NodeRepository().Create(ctx, &node); err != nil {
		return nil, err
	}

	s.invalidateChain(ctx, uow, node.Id)

	return &dto.CreateNodeResponse{
		Id: node.Id,
	}, nil
}

func (s *nodeService) Update(ctx context.Context, req *dto.UpdateNodeRequest) (*dto.UpdateNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, apperror.NotFound("node", req.Id.String())
	}

	if req.Title != nil {
		node.Title = *req.Title
	}
	if req.Content != nil {
		if node.Type.IsContainer() {
			return nil, apperror.ValidationFailed("content", "content is only valid on file nodes")
		}
		node.Content = *req.Content
	}
	if req.ResourceType != nil {
		if node.Type.IsContainer() {
			return nil, apperror.ValidationFailed("resource_type", "resource type is only valid on file nodes")
		}
		node.ResourceType = *req.ResourceType
	}
	if req.Tags != nil {
		node.Tags = *req.Tags
	}
	if req.Pinned != nil {
		node.Pinned = *req.Pinned
	}
	if req.Progress != nil {
		if node.Type.IsContainer() {
			return nil, apperror.ValidationFailed("progress", "progress on container nodes is derived, not stored")
		}
		node.Progress = *req.Progress
	}
	if req.Prerequisites != nil {
		node.Prerequisites = *req.Prerequisites
	}

	now := time.Now()
	node.UpdatedAt = &now

	if err := uow.NodeRepository().Update(ctx, node); err != nil {
		return nil, err
	}

	s.invalidateChain(ctx, uow, node.Id)

	return &dto.UpdateNodeResponse{
		Id: node.Id,
	}, nil
}

func (s *nodeService) Move(ctx context.Context, req *dto.MoveNodeRequest) (*dto.MoveNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, apperror.NotFound("node", req.Id.String())
	}

	all, err := uow.NodeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if req.ParentId != nil {
		if err := s.requireContainer(ctx, uow, *req.ParentId); err != nil {
			return nil, err
		}
		// A node must not end up inside its own subtree.
		if tree.Contains(all, node.Id, *req.ParentId) {
			return nil, apperror.Conflict("cannot move a node into its own subtree")
		}
	}

	// The old chain stops embedding this subtree; the new chain starts to.
	oldChain := append(tree.AncestorIDs(all, node.Id), node.Id)

	node.ParentId = req.ParentId
	now := time.Now()
	node.UpdatedAt = &now

	if err := uow.NodeRepository().Update(ctx, node); err != nil {
		return nil, err
	}

	s.cache.Invalidate(oldChain...)
	s.invalidateChain(ctx, uow, node.Id)

	return &dto.MoveNodeResponse{
		Id: node.Id,
	}, nil
}

func (s *nodeService) UpdateProgress(ctx context.Context, req *dto.UpdateNodeProgressRequest) (*dto.UpdateNodeProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, apperror.NotFound("node", req.Id.String())
	}
	if node.Type.IsContainer() {
		return nil, apperror.ValidationFailed("progress", "progress on container nodes is derived, not stored")
	}

	node.Progress = req.Progress
	now := time.Now()
	node.UpdatedAt = &now

	if err := uow.NodeRepository().Update(ctx, node); err != nil {
		return nil, err
	}

	s.invalidateChain(ctx, uow, node.Id)

	return &dto.UpdateNodeProgressResponse{
		Id:       node.Id,
		Progress: node.Progress,
	}, nil
}

func (s *nodeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if node == nil {
		return apperror.NotFound("node", id.String())
	}

	all, err := uow.NodeRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	cascade := tree.CascadeIDs(all, id)

	// The whole subtree goes in one transaction; a failure partway leaves
	// nothing half-deleted.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NodeRepository().DeleteBatch(ctx, cascade); err != nil {
		return err
	}
	if err := uow.ActivityRepository().DeleteByNodeIds(ctx, cascade); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.cache.Flush()
	return nil
}

func (s *nodeService) requireContainer(ctx context.Context, uow unitofwork.UnitOfWork, parentId uuid.UUID) error {
	parent, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: parentId})
	if err != nil {
		return err
	}
	if parent == nil {
		return apperror.ValidationFailed("parent_id", "parent node does not exist")
	}
	if !parent.Type.IsContainer() {
		return apperror.ValidationFailed("parent_id", "parent node cannot hold children")
	}
	return nil
}

func (s *nodeService) invalidateChain(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) {
	all, err := uow.NodeRepository().FindAll(ctx)
	if err != nil {
		// Invalidation must not fail the write; dropping everything is the
		// safe fallback.
		s.cache.Flush()
		return
	}
	s.cache.Invalidate(append(tree.AncestorIDs(all, id), id)...)
}

func toNodeResponse(n *entity.Node) *dto.NodeResponse {
	return &dto.NodeResponse{
		Id:            n.Id,
		Title:         n.Title,
		Type:          string(n.Type),
		ParentId:      n.ParentId,
		Content:       n.Content,
		ResourceType:  n.ResourceType,
		Tags:          n.Tags,
		Pinned:        n.Pinned,
		Progress:      n.Progress,
		Prerequisites: n.Prerequisites,
		LastStudied:   n.LastStudied,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func toNodeResponses(nodes []*entity.Node) []*dto.NodeResponse {
	result := make([]*dto.NodeResponse, len(nodes))
	for i, n := range nodes {
		result[i] = toNodeResponse(n)
	}
	return result
}

func toTreeResponse(n *tree.Node) *dto.NodeTreeResponse {
	res := &dto.NodeTreeResponse{
		NodeResponse: *toNodeResponse(n.Node),
		Children:     make([]*dto.NodeTreeResponse, len(n.Children)),
	}
	for i, child := range n.Children {
		res.Children[i] = toTreeResponse(child)
	}
	// Containers report the derived mean, files their stored value.
	if n.Type.IsContainer() {
		sum := 0
		for _, child := range res.Children {
			sum += child.Progress
		}
		if len(res.Children) > 0 {
			res.Progress = sum / len(res.Children)
		} else {
			res.Progress = 0
		}
	}
	return res
}
