package domain

import (
	"fmt"
	"net/mail"
	"time"
)

const (
	DefaultExportQueue = "export_movies"
)

// ExportMessage is the queue body. It must stay exactly {"email": "..."}.
type ExportMessage struct {
	Email string `json:"email" validate:"required,email"`
}

// ExportRequest is what the producer accepted and what the worker rebuilds
// from a delivery.
type ExportRequest struct {
	MessageID          string
	DestinationAddress string
	RequestedAt        time.Time
}

func (r ExportRequest) Message() ExportMessage {
	return ExportMessage{Email: r.DestinationAddress}
}

// Envelope carries an ExportMessage together with broker metadata.
type Envelope struct {
	MessageID   string
	Timestamp   time.Time
	Redelivered bool
	// DeliveryCount is only known for brokers that report it (quorum queues).
	DeliveryCount int64
	Body          []byte
}

// CheckRecipient rejects addresses the mail transport cannot put in a To
// header. It is stricter than the validator email tag on trailing dots and
// empty labels.
func CheckRecipient(address string) error {
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if parsed.Address != address {
		return fmt.Errorf("%w: %q is not a bare address", ErrInvalidAddress, address)
	}
	return nil
}
