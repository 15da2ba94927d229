package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

type ExportProducer struct {
	publisher port.ExportPublisher
	validate  *validator.Validate
	now       func() time.Time
}

func NewExportProducer(publisher port.ExportPublisher, validate *validator.Validate) *ExportProducer {
	return &ExportProducer{
		publisher: publisher,
		validate:  validate,
		now:       time.Now,
	}
}

// Submit publishes one export message for destinationAddress and returns as
// soon as the broker accepted it. It never retries.
func (p *ExportProducer) Submit(ctx context.Context, destinationAddress string) (*domain.ExportRequest, error) {
	msg := domain.ExportMessage{Email: destinationAddress}
	if err := p.validate.StructCtx(ctx, msg); err != nil {
		exportRequestsCounter.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAddress, err)
	}
	if err := domain.CheckRecipient(destinationAddress); err != nil {
		exportRequestsCounter.WithLabelValues("invalid").Inc()
		return nil, err
	}

	request := domain.ExportRequest{
		MessageID:          uuid.NewString(),
		DestinationAddress: destinationAddress,
		RequestedAt:        p.now().UTC(),
	}

	if err := p.publisher.PublishExport(ctx, request); err != nil {
		exportRequestsCounter.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrQueueUnavailable, err)
	}

	exportRequestsCounter.WithLabelValues("accepted").Inc()
	log.WithFields(log.Fields{
		"messageId": request.MessageID,
		"email":     request.DestinationAddress,
	}).Info("Export request enqueued")

	return &request, nil
}
