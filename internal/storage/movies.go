package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"cineiut.com/catalog/internal/core/domain"
)

type CatalogStorage struct {
	db *PostgresDB
}

func NewCatalogStorage(db *PostgresDB) *CatalogStorage {
	return &CatalogStorage{
		db: db,
	}
}

// ListAll reads the whole movie table in id order. The read is a single
// statement, so rows are consistent as of its start.
func (s *CatalogStorage) ListAll(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT title, description, "releaseDate", director, "createdAt", "updatedAt"
		 FROM movie
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.CatalogEntry, 0)
	for rows.Next() {
		var entry domain.CatalogEntry
		var description, director *string
		err := rows.Scan(
			&entry.Title,
			&description,
			&entry.ReleaseDate,
			&director,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if description != nil {
			entry.Description = *description
		}
		if director != nil {
			entry.Director = *director
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *CatalogStorage) GetMovie(ctx context.Context, movieID int64) (*domain.Movie, error) {
	var movie domain.Movie
	err := s.db.QueryRow(ctx,
		"SELECT id, title FROM movie WHERE id = $1",
		movieID,
	).Scan(&movie.ID, &movie.Title)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (s *CatalogStorage) ListUsers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.listSubscribers(ctx,
		`SELECT mail, "firstName" FROM "user" ORDER BY id ASC`,
	)
}

// ListFavoriters returns the users who marked movieID as a favorite.
func (s *CatalogStorage) ListFavoriters(ctx context.Context, movieID int64) ([]domain.Subscriber, error) {
	return s.listSubscribers(ctx,
		`SELECT u.mail, u."firstName"
		 FROM favorite f
		 JOIN "user" u ON u.id = f.user_id
		 WHERE f.movie_id = $1
		 ORDER BY u.id ASC`,
		movieID,
	)
}

func (s *CatalogStorage) listSubscribers(ctx context.Context, query string, args ...any) ([]domain.Subscriber, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := make([]domain.Subscriber, 0)
	for rows.Next() {
		var subscriber domain.Subscriber
		if err := rows.Scan(&subscriber.Mail, &subscriber.FirstName); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, subscriber)
	}

	return subscribers, rows.Err()
}
