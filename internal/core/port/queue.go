package port

import (
	"context"

	"cineiut.com/catalog/internal/core/domain"
)

// Delivery is one delivered queue message owned by a consumer until it is
// acknowledged or negatively acknowledged.
type Delivery interface {
	Envelope() domain.Envelope
	Ack() error
	Nack(requeue bool) error
}

type DeliveryHandler interface {
	Handle(ctx context.Context, delivery Delivery)
}
