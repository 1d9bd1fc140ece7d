package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"studyhub-be/internal/apperror"
	"studyhub-be/internal/dto"
	"studyhub-be/internal/repository/specification"
	"studyhub-be/internal/repository/unitofwork"
)

type IActivityService interface {
	// RecordBeacon is fire-and-forget: the caller gets an ack as soon as the
	// message is on the bus, not when the row lands.
	RecordBeacon(ctx context.Context, req *dto.ActivityBeaconRequest) error
	Summary(ctx context.Context, nodeId uuid.UUID) (*dto.ActivitySummaryResponse, error)
}

type activityService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewActivityService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IActivityService {
	return &activityService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *activityService) RecordBeacon(ctx context.Context, req *dto.ActivityBeaconRequest) error {
	msg := dto.ActivityRecordedMessage{
		NodeId:          req.NodeId,
		DurationSeconds: req.DurationSeconds,
		RecordedAt:      time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

func (s *activityService) Summary(ctx context.Context, nodeId uuid.UUID) (*dto.ActivitySummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: nodeId})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, apperror.NotFound("node", nodeId.String())
	}

	total, err := uow.ActivityRepository().SumDurationByNode(ctx, nodeId)
	if err != nil {
		return nil, err
	}

	last, err := uow.ActivityRepository().LastRecordedAt(ctx, nodeId)
	if err != nil {
		return nil, err
	}

	return &dto.ActivitySummaryResponse{
		NodeId:       nodeId,
		TotalSeconds: int(total),
		LastRecorded: last,
	}, nil
}
