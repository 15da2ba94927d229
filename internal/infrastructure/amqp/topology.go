package amqp

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// QueueOptions is deployment configuration. Declaring the same options twice
// is a no-op on the broker; different options fail with PRECONDITION_FAILED.
type QueueOptions struct {
	Name    string
	Durable bool
	// DeadLetterExchange is optional. When set, rejected messages are routed
	// to it and a "<Name>.dead" queue is bound to collect them.
	DeadLetterExchange string
}

func (o QueueOptions) DeadLetterQueue() string {
	return o.Name + ".dead"
}

// TopologyManager handles the declaration of exchanges, queues, and bindings
type TopologyManager struct {
	client *Client
}

func NewTopologyManager(client *Client) *TopologyManager {
	return &TopologyManager{
		client: client,
	}
}

// Setup declares the export queue and, if configured, its dead-letter route.
func (t *TopologyManager) Setup(opts QueueOptions) error {
	ch, err := t.client.OpenChannel()
	if err != nil {
		return err
	}
	defer ch.Close()

	var args amqp.Table
	if opts.DeadLetterExchange != "" {
		if err := t.declareExchange(ch, opts.DeadLetterExchange, opts.Durable); err != nil {
			return err
		}
		if err := t.declareQueue(ch, opts.DeadLetterQueue(), opts.Durable, nil); err != nil {
			return err
		}
		if err := t.bindQueue(ch, opts.DeadLetterQueue(), opts.DeadLetterExchange, opts.Name); err != nil {
			return err
		}
		args = amqp.Table{"x-dead-letter-exchange": opts.DeadLetterExchange}
	}

	if err := t.declareQueue(ch, opts.Name, opts.Durable, args); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"queue":   opts.Name,
		"durable": opts.Durable,
	}).Info("AMQP topology setup completed successfully")
	return nil
}

// declareExchange declares a direct exchange
func (t *TopologyManager) declareExchange(ch *amqp.Channel, name string, durable bool) error {
	err := ch.ExchangeDeclare(
		name,
		"direct", // type
		durable,  // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", name, err)
	}

	log.WithField("exchange", name).Debug("Exchange declared")
	return nil
}

func (t *TopologyManager) declareQueue(ch *amqp.Channel, name string, durable bool, args amqp.Table) error {
	_, err := ch.QueueDeclare(
		name,
		durable, // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		args,    // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

// bindQueue binds a queue to an exchange with a routing key
func (t *TopologyManager) bindQueue(ch *amqp.Channel, queueName, exchangeName, routingKey string) error {
	err := ch.QueueBind(
		queueName,
		routingKey,
		exchangeName,
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue '%s' to exchange '%s' with routing key '%s': %w",
			queueName, exchangeName, routingKey, err)
	}

	log.WithFields(log.Fields{
		"queue":      queueName,
		"exchange":   exchangeName,
		"routingKey": routingKey,
	}).Debug("Queue bound to exchange")
	return nil
}
