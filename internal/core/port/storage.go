package port

import (
	"context"

	"cineiut.com/catalog/internal/core/domain"
)

// CatalogReader lists every catalog entry as of read time, in a stable order.
type CatalogReader interface {
	ListAll(ctx context.Context) ([]domain.CatalogEntry, error)
}

type SubscriberReader interface {
	GetMovie(ctx context.Context, movieID int64) (*domain.Movie, error)
	ListUsers(ctx context.Context) ([]domain.Subscriber, error)
	ListFavoriters(ctx context.Context, movieID int64) ([]domain.Subscriber, error)
}
