package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"studyhub-be/internal/dto"
	"studyhub-be/internal/entity"
	"studyhub-be/internal/pkg/logger"
	"studyhub-be/internal/repository/specification"
	"studyhub-be/internal/repository/unitofwork"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic: each beacon becomes an
// activity-log row and bumps the node's lastStudied timestamp.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ActivityRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("activity", "Failed to unmarshal beacon message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are dropped, not retried
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	node, err := uow.NodeRepository().FindOne(ctx, specification.ByID{ID: payload.NodeId})
	if err != nil {
		cs.logger.Error("activity", "Failed to look up node for beacon", map[string]interface{}{
			"node_id": payload.NodeId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if node == nil {
		// Node deleted between beacon and consumption. Drop.
		cs.logger.Warn("activity", "Beacon for unknown node dropped", map[string]interface{}{
			"node_id": payload.NodeId.String(),
		})
		msg.Ack()
		return
	}

	log := entity.ActivityLog{
		Id:              uuid.New(),
		NodeId:          payload.NodeId,
		DurationSeconds: payload.DurationSeconds,
		RecordedAt:      payload.RecordedAt,
	}
	if err := uow.ActivityRepository().Create(ctx, &log); err != nil {
		cs.logger.Error("activity", "Failed to persist activity log", map[string]interface{}{
			"node_id": payload.NodeId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	node.LastStudied = &payload.RecordedAt
	if err := uow.NodeRepository().Update(ctx, node); err != nil {
		cs.logger.Error("activity", "Failed to bump lastStudied", map[string]interface{}{
			"node_id": payload.NodeId.String(),
			"error":   err.Error(),
		})
		// The log row exists; the stale timestamp heals on the next beacon.
	}

	msg.Ack()
}
