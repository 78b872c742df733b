package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/service"
)

func TestNotificationWorkerDeliversQueuedEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	w := StartNotificationWorker(dispatcher, service.NewNotificationService(zap.New(core)))

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:       "e1",
		Type:     events.EventOrderPlaced,
		EntityID: "order-1",
		UserID:   "user-1",
	}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:     "e2",
		Type:   events.EventUserRegistered,
		UserID: "user-2",
	}))

	// Stop drains the queue before returning.
	w.Stop()

	messages := make([]string, 0, logs.Len())
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "notify: order placed")
	assert.Contains(t, messages, "notify: user registered")
}

func TestNotificationWorkerInertWithoutDispatcher(t *testing.T) {
	w := StartNotificationWorker(nil, service.NewNotificationService(zap.NewNop()))
	assert.NotNil(t, w)
}
