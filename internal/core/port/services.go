package port

import (
	"context"

	"cineiut.com/catalog/internal/core/domain"
)

type ExportProducer interface {
	Submit(ctx context.Context, destinationAddress string) (*domain.ExportRequest, error)
}

type ExportWorker interface {
	Process(ctx context.Context, envelope domain.Envelope) error
}

type CatalogNotifier interface {
	Announce(ctx context.Context, movieID int64, event domain.AnnouncementEvent) (int, error)
	Wait(ctx context.Context) error
}
