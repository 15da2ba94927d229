package amqp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

const resubscribeDelay = 5 * time.Second

// Consumer consumes messages from RabbitMQ with manual acknowledgement.
type Consumer struct {
	client   *Client
	handler  port.DeliveryHandler
	prefetch int
	tag      string
	done     chan struct{}

	mu sync.Mutex
	ch *amqp.Channel
}

// NewConsumer creates a new consumer. prefetch bounds the number of
// unacknowledged deliveries held by this process.
func NewConsumer(client *Client, handler port.DeliveryHandler, prefetch int) *Consumer {
	if prefetch < 1 {
		prefetch = 1
	}
	return &Consumer{
		client:   client,
		handler:  handler,
		prefetch: prefetch,
		tag:      "export-worker-" + uuid.NewString(),
		done:     make(chan struct{}),
	}
}

// Consume subscribes to queueName and dispatches deliveries in the background
// until ctx is cancelled. A lost channel or connection is resubscribed.
// Cancellation stops new deliveries but keeps the channel open so in-flight
// jobs can still acknowledge; call Close once they are done.
func (c *Consumer) Consume(ctx context.Context, queueName string) error {
	msgs, err := c.subscribe(queueName)
	if err != nil {
		return err
	}

	log.WithField("queue", queueName).Info("Started consuming messages")

	go func() {
		defer close(c.done)
		for {
			c.drain(ctx, msgs)

			if ctx.Err() != nil {
				c.cancel()
				log.Info("Consumer stopped due to context cancellation")
				return
			}

			log.Warn("Message channel closed, resubscribing")
			for {
				select {
				case <-ctx.Done():
					return
				case <-time.After(resubscribeDelay):
				}
				msgs, err = c.subscribe(queueName)
				if err == nil {
					break
				}
				log.WithError(err).Error("Failed to resubscribe")
			}
		}
	}()

	return nil
}

// Done is closed once the consume loop has exited.
func (c *Consumer) Done() <-chan struct{} {
	return c.done
}

// Close releases the consuming channel.
func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch == nil || c.ch.IsClosed() {
		return nil
	}
	return c.ch.Close()
}

func (c *Consumer) cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch == nil || c.ch.IsClosed() {
		return
	}
	if err := c.ch.Cancel(c.tag, false); err != nil {
		log.WithError(err).Warn("Failed to cancel consumer")
	}
}

func (c *Consumer) subscribe(queueName string) (<-chan amqp.Delivery, error) {
	ch, err := c.client.OpenChannel()
	if err != nil {
		return nil, err
	}

	err = ch.Qos(
		c.prefetch, // prefetch count
		0,          // prefetch size
		false,      // global
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		c.tag, // consumer tag
		false, // auto-ack (we'll manually ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to register consumer: %w", err)
	}

	c.mu.Lock()
	previous := c.ch
	c.ch = ch
	c.mu.Unlock()
	if previous != nil && !previous.IsClosed() {
		_ = previous.Close()
	}

	return msgs, nil
}

func (c *Consumer) drain(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			c.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single message
func (c *Consumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	log.WithFields(log.Fields{
		"routingKey":  msg.RoutingKey,
		"messageId":   msg.MessageId,
		"redelivered": msg.Redelivered,
	}).Debug("Processing message")

	// Delegate to the handler
	c.handler.Handle(ctx, &delivery{msg: msg})
}

type delivery struct {
	msg amqp.Delivery
}

func (d *delivery) Envelope() domain.Envelope {
	return domain.Envelope{
		MessageID:     d.msg.MessageId,
		Timestamp:     d.msg.Timestamp,
		Redelivered:   d.msg.Redelivered,
		DeliveryCount: deliveryCount(d.msg.Headers),
		Body:          d.msg.Body,
	}
}

func (d *delivery) Ack() error {
	return d.msg.Ack(false)
}

func (d *delivery) Nack(requeue bool) error {
	return d.msg.Nack(false, requeue)
}

// deliveryCount reads the quorum queue x-delivery-count header, if any.
func deliveryCount(headers amqp.Table) int64 {
	switch v := headers["x-delivery-count"].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}
