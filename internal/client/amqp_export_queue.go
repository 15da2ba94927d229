package client

import (
	"context"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/infrastructure/amqp"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message amqp.Message) error
}

// AMQPExportQueue publishes export requests straight to the export queue
// through the default exchange.
type AMQPExportQueue struct {
	publisher Publisher
	queue     string
	durable   bool
}

func NewAMQPExportQueue(publisher Publisher, queue string, durable bool) *AMQPExportQueue {
	return &AMQPExportQueue{
		publisher: publisher,
		queue:     queue,
		durable:   durable,
	}
}

func (q *AMQPExportQueue) PublishExport(ctx context.Context, request domain.ExportRequest) error {
	return q.publisher.Publish(ctx, "", q.queue, amqp.Message{
		MessageID:  request.MessageID,
		Timestamp:  request.RequestedAt,
		Persistent: q.durable,
		Payload:    request.Message(),
	})
}
