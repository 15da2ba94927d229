package domain

import "errors"

var (
	// ErrQueueUnavailable means the broker could not accept a publish.
	ErrQueueUnavailable = errors.New("export queue unavailable")
	// ErrMalformedMessage is not retryable, the message is acknowledged and dropped.
	ErrMalformedMessage   = errors.New("malformed export message")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrDeliveryFailure    = errors.New("mail delivery failure")

	ErrInvalidAddress = errors.New("invalid destination address")
	ErrMovieNotFound  = errors.New("movie not found")
)

// Retryable reports whether a job failure should leave the message
// unacknowledged so the broker redelivers it.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrMalformedMessage)
}
