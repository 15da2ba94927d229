package port

import (
	"context"

	"cineiut.com/catalog/internal/core/domain"
)

type ExportPublisher interface {
	PublishExport(ctx context.Context, request domain.ExportRequest) error
}

type MailDispatcher interface {
	Send(ctx context.Context, mail domain.Mail) error
}

// DeliveryTracker remembers which export messages already produced a mail.
type DeliveryTracker interface {
	Delivered(ctx context.Context, messageID string) (bool, error)
	MarkDelivered(ctx context.Context, messageID string) error
}
