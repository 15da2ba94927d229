package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

var ErrPublishNacked = errors.New("message was nacked by broker")

// Message is a JSON payload plus the publishing properties the caller controls.
type Message struct {
	MessageID  string
	Timestamp  time.Time
	Persistent bool
	Payload    any
}

type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

// Publish publishes a message to an exchange with a routing key on a channel
// opened for this call, and waits for the broker confirm.
func (p *Publisher) Publish(ctx context.Context, exchange, routingKey string, message Message) error {
	body, err := json.Marshal(message.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// Add timeout to context if not already present
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, publishTimeout)
		defer cancel()
	}

	ch, err := p.client.OpenChannel()
	if err != nil {
		return err
	}
	defer ch.Close()

	// Enable publisher confirms
	if err := ch.Confirm(false); err != nil {
		return fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	deliveryMode := amqp.Transient
	if message.Persistent {
		deliveryMode = amqp.Persistent
	}

	confirmation, err := ch.PublishWithDeferredConfirmWithContext(
		ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: deliveryMode,
			MessageId:    message.MessageID,
			Timestamp:    message.Timestamp,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to exchange '%s' with routing key '%s': %w", exchange, routingKey, err)
	}

	// Wait for confirmation
	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("confirmation timeout: %w", err)
	}
	if !acked {
		return ErrPublishNacked
	}

	log.WithFields(log.Fields{
		"exchange":   exchange,
		"routingKey": routingKey,
		"messageId":  message.MessageID,
	}).Debug("Message published and confirmed")

	return nil
}
