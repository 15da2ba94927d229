package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

type ExportWorker struct {
	catalog  port.CatalogReader
	mailer   port.MailDispatcher
	tracker  port.DeliveryTracker
	validate *validator.Validate
}

// NewExportWorker builds the export job runner. tracker may be nil.
func NewExportWorker(
	catalog port.CatalogReader,
	mailer port.MailDispatcher,
	tracker port.DeliveryTracker,
	validate *validator.Validate,
) *ExportWorker {
	return &ExportWorker{
		catalog:  catalog,
		mailer:   mailer,
		tracker:  tracker,
		validate: validate,
	}
}

// Process runs one export job. A nil error means the message may be
// acknowledged. Errors wrapping domain.ErrMalformedMessage must be dropped,
// every other error leaves the message for redelivery.
func (w *ExportWorker) Process(ctx context.Context, envelope domain.Envelope) (err error) {
	start := time.Now()
	outcome := outcomeAcked
	defer func() {
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrMalformedMessage):
			outcome = outcomeDropped
		default:
			outcome = outcomeRetry
		}
		exportJobsCounter.WithLabelValues(outcome).Inc()
		exportJobDuration.Observe(time.Since(start).Seconds())
	}()

	request, err := w.decode(ctx, envelope)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{
		"messageId":   request.MessageID,
		"email":       request.DestinationAddress,
		"redelivered": envelope.Redelivered,
	})

	if w.alreadyDelivered(ctx, request.MessageID) {
		outcome = outcomeDuplicate
		logger.Info("Export already delivered for this message, skipping send")
		return nil
	}

	entries, err := w.catalog.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	document := RenderCSV(entries)

	mail := domain.Mail{
		To:      request.DestinationAddress,
		Subject: domain.ExportSubject,
		Text:    domain.ExportBody,
		Attachments: []domain.Attachment{
			{
				Filename:    domain.ExportFilename,
				ContentType: domain.ExportContentType,
				Data:        document,
			},
		},
	}
	if err := w.mailer.Send(ctx, mail); err != nil {
		// A recipient the transport refuses will be refused on every redelivery.
		if errors.Is(err, domain.ErrInvalidAddress) {
			return fmt.Errorf("%w: %w", domain.ErrMalformedMessage, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, err)
	}

	exportedRowsCounter.Add(float64(len(entries)))
	logger.WithField("rows", len(entries)).Info("Export sent")

	w.markDelivered(ctx, request.MessageID)
	return nil
}

func (w *ExportWorker) decode(ctx context.Context, envelope domain.Envelope) (*domain.ExportRequest, error) {
	var msg domain.ExportMessage
	if err := json.Unmarshal(envelope.Body, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMessage, err)
	}
	if err := w.validate.StructCtx(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMessage, err)
	}
	if err := domain.CheckRecipient(msg.Email); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedMessage, err)
	}

	return &domain.ExportRequest{
		MessageID:          envelope.MessageID,
		DestinationAddress: msg.Email,
		RequestedAt:        envelope.Timestamp,
	}, nil
}

func (w *ExportWorker) alreadyDelivered(ctx context.Context, messageID string) bool {
	if w.tracker == nil || messageID == "" {
		return false
	}
	delivered, err := w.tracker.Delivered(ctx, messageID)
	if err != nil {
		log.WithError(err).WithField("messageId", messageID).Warn("Delivery tracker lookup failed")
		return false
	}
	return delivered
}

func (w *ExportWorker) markDelivered(ctx context.Context, messageID string) {
	if w.tracker == nil || messageID == "" {
		return
	}
	if err := w.tracker.MarkDelivered(ctx, messageID); err != nil {
		log.WithError(err).WithField("messageId", messageID).Warn("Failed to record delivered export")
	}
}
