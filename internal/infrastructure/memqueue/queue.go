// Package memqueue is an in-process queue with the same at-least-once
// contract as the broker: a delivery stays owned by its consumer until it is
// acknowledged, and a negative acknowledgement with requeue makes it
// deliverable again with the redelivered flag set.
package memqueue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

const defaultQueueCapacity = 1024

var (
	ErrQueueFull      = errors.New("memqueue: queue full")
	ErrQueueClosed    = errors.New("memqueue: queue closed")
	ErrAlreadySettled = errors.New("memqueue: delivery already acknowledged")
)

type Queue struct {
	ready chan domain.Envelope

	mu      sync.Mutex
	closed  bool
	unacked int
	dead    []domain.Envelope
}

func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &Queue{
		ready: make(chan domain.Envelope, capacity),
	}
}

// PublishExport implements port.ExportPublisher.
func (q *Queue) PublishExport(_ context.Context, request domain.ExportRequest) error {
	body, err := json.Marshal(request.Message())
	if err != nil {
		return err
	}
	return q.Publish(domain.Envelope{
		MessageID: request.MessageID,
		Timestamp: request.RequestedAt,
		Body:      body,
	})
}

// Publish enqueues a raw envelope without blocking.
func (q *Queue) Publish(envelope domain.Envelope) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ready <- envelope:
		return nil
	default:
		return ErrQueueFull
	}
}

// Consume hands every ready message to handler until ctx is done.
func (q *Queue) Consume(ctx context.Context, handler port.DeliveryHandler) {
	for {
		select {
		case <-ctx.Done():
			log.Info("In-memory consumer stopped due to context cancellation")
			return
		case envelope := <-q.ready:
			q.mu.Lock()
			q.unacked++
			q.mu.Unlock()
			handler.Handle(ctx, &delivery{queue: q, envelope: envelope})
		}
	}
}

// Ready returns the number of messages waiting for a consumer.
func (q *Queue) Ready() int {
	return len(q.ready)
}

// Unacked returns the number of delivered but unsettled messages.
func (q *Queue) Unacked() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.unacked
}

// Dead returns messages rejected without requeue.
func (q *Queue) Dead() []domain.Envelope {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]domain.Envelope(nil), q.dead...)
}

func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}

type delivery struct {
	queue    *Queue
	envelope domain.Envelope

	mu      sync.Mutex
	settled bool
}

func (d *delivery) Envelope() domain.Envelope {
	return d.envelope
}

func (d *delivery) Ack() error {
	return d.settle(func(q *Queue) {})
}

func (d *delivery) Nack(requeue bool) error {
	return d.settle(func(q *Queue) {
		envelope := d.envelope
		if !requeue {
			q.dead = append(q.dead, envelope)
			return
		}
		envelope.Redelivered = true
		envelope.DeliveryCount++
		select {
		case q.ready <- envelope:
		default:
			log.WithField("messageId", envelope.MessageID).Error("In-memory queue full, dead-lettering requeued message")
			q.dead = append(q.dead, envelope)
		}
	})
}

func (d *delivery) settle(fn func(q *Queue)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.settled {
		return ErrAlreadySettled
	}
	d.settled = true

	d.queue.mu.Lock()
	defer d.queue.mu.Unlock()
	d.queue.unacked--
	fn(d.queue)
	return nil
}
