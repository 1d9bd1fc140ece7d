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
)

type IDocumentService interface {
	GetAll(ctx context.Context, topicId string) ([]*dto.DocumentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error)
	Create(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error)
	Update(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
	}
}

func (s *documentService) GetAll(ctx context.Context, topicId string) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at"}}
	if topicId != "" {
		specs = append(specs, specification.ByTopicKey{TopicId: topicId})
	}

	documents, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentResponse, len(documents))
	for i, d := range documents {
		result[i] = toDocumentResponse(d)
	}
	return result, nil
}

func (s *documentService) Show(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, apperror.NotFound("document", id.String())
	}

	return toDocumentResponse(document), nil
}

func (s *documentService) Create(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	kind := entity.DocumentKind(req.Kind)
	if kind == "" {
		kind = entity.DocumentKindNote
	}

	document := entity.Document{
		Id:        uuid.New(),
		TopicId:   req.TopicId,
		Title:     req.Title,
		Content:   req.Content,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, &document); err != nil {
		return nil, err
	}

	return &dto.CreateDocumentResponse{
		Id: document.Id,
	}, nil
}

func (s *documentService) Update(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, apperror.NotFound("document", req.Id.String())
	}

	if req.Title != nil {
		document.Title = *req.Title
	}
	if req.Content != nil {
		document.Content = *req.Content
	}

	now := time.Now()
	document.UpdatedAt = &now

	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		return nil, err
	}

	return &dto.UpdateDocumentResponse{
		Id: document.Id,
	}, nil
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if document == nil {
		return apperror.NotFound("document", id.String())
	}

	return uow.DocumentRepository().Delete(ctx, id)
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:        d.Id,
		TopicId:   d.TopicId,
		Title:     d.Title,
		Content:   d.Content,
		Kind:      string(d.Kind),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
