package service

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub-be/internal/apperror"
	"studyhub-be/internal/dto"
	"studyhub-be/internal/entity"
	"studyhub-be/internal/repository/specification"
)

const testTopic = "ACTIVITY_RECORDED_TEST"

func newActivityPipeline(t *testing.T, uow *fakeUnitOfWork) (IActivityService, IConsumerService) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	publisher := NewPublisherService(testTopic, pubSub)
	activity := NewActivityService(uow, publisher)
	consumer := NewConsumerService(pubSub, testTopic, uow, nopLogger{})
	return activity, consumer
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestActivityBeaconFlowsThroughConsumer(t *testing.T) {
	uow := newFakeUnitOfWork()
	activity, consumer := newActivityPipeline(t, uow)
	ctx := context.Background()

	node := seedNode(uow, "Two Sum", entity.NodeTypeFile, nil)

	require.NoError(t, consumer.Consume(ctx))

	err := activity.RecordBeacon(ctx, &dto.ActivityBeaconRequest{
		NodeId:          node.Id,
		DurationSeconds: 300,
	})
	require.NoError(t, err)

	waitFor(t, func() bool { return len(uow.activityRepo.logs) == 1 })

	log := uow.activityRepo.logs[0]
	assert.Equal(t, node.Id, log.NodeId)
	assert.Equal(t, 300, log.DurationSeconds)

	// The beacon also freshens the node's lastStudied stamp.
	waitFor(t, func() bool {
		stored, _ := uow.nodeRepo.FindOne(ctx, specification.ByID{ID: node.Id})
		return stored != nil && stored.LastStudied != nil
	})
}

func TestActivityBeaconForDeletedNodeIsDropped(t *testing.T) {
	uow := newFakeUnitOfWork()
	activity, consumer := newActivityPipeline(t, uow)
	ctx := context.Background()

	require.NoError(t, consumer.Consume(ctx))

	err := activity.RecordBeacon(ctx, &dto.ActivityBeaconRequest{
		NodeId:          uuid.New(),
		DurationSeconds: 60,
	})
	require.NoError(t, err)

	// Nothing to assert beyond "no row appears": the consumer acks and drops.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, uow.activityRepo.logs)
}

func TestActivitySummary(t *testing.T) {
	uow := newFakeUnitOfWork()
	activity, _ := newActivityPipeline(t, uow)
	ctx := context.Background()

	node := seedNode(uow, "Two Sum", entity.NodeTypeFile, nil)

	first := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)
	uow.activityRepo.logs = []*entity.ActivityLog{
		{Id: uuid.New(), NodeId: node.Id, DurationSeconds: 600, RecordedAt: first},
		{Id: uuid.New(), NodeId: node.Id, DurationSeconds: 300, RecordedAt: second},
		{Id: uuid.New(), NodeId: uuid.New(), DurationSeconds: 999, RecordedAt: second},
	}

	summary, err := activity.Summary(ctx, node.Id)
	require.NoError(t, err)
	assert.Equal(t, 900, summary.TotalSeconds)
	require.NotNil(t, summary.LastRecorded)
	assert.Equal(t, second, *summary.LastRecorded)

	_, err = activity.Summary(ctx, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
