package worker

import (
	"context"
	"errors"

	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/service"
)

const notificationQueueSize = 64

// NotificationWorker delivers notifications off the request path. Subscribe
// callbacks enqueue events; a single background goroutine drains the queue.
type NotificationWorker struct {
	notifications *service.NotificationService
	queue         chan events.Event
	done          chan struct{}
}

// StartNotificationWorker subscribes the worker to the storefront events and
// starts the drain goroutine. A nil dispatcher or service yields an inert
// worker.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService) *NotificationWorker {
	w := &NotificationWorker{
		notifications: notifications,
		queue:         make(chan events.Event, notificationQueueSize),
		done:          make(chan struct{}),
	}
	if dispatcher == nil || notifications == nil {
		close(w.done)
		return w
	}

	for _, eventType := range []events.EventType{
		events.EventUserRegistered,
		events.EventOrderPlaced,
		events.EventOrderStatusChanged,
	} {
		dispatcher.Subscribe(eventType, w.enqueue)
	}

	go w.run()
	return w
}

func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
		return nil
	default:
		return errors.New("notification queue full")
	}
}

func (w *NotificationWorker) run() {
	defer close(w.done)
	for event := range w.queue {
		w.notifications.Deliver(context.Background(), event)
	}
}

// Stop drains any queued events and waits for the goroutine to exit.
func (w *NotificationWorker) Stop() {
	close(w.queue)
	<-w.done
}
