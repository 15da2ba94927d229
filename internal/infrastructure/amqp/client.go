package amqp

import (
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

var ErrClientClosed = errors.New("amqp client closed")

// Client owns the RabbitMQ connection. Channels are opened per use and the
// caller closes them. A dropped connection is redialed on the next use.
type Client struct {
	conn   *amqp.Connection
	mu     sync.Mutex
	url    string
	dial   func(url string) (*amqp.Connection, error)
	closed bool
}

// NewClient creates a new AMQP client
func NewClient(url string) (*Client, error) {
	client := &Client{
		url:  url,
		dial: amqp.Dial,
	}

	if _, err := client.connection(); err != nil {
		return nil, fmt.Errorf("failed to create AMQP client: %w", err)
	}

	return client, nil
}

// connection returns the live connection, dialing a new one if needed.
func (c *Client) connection() (*amqp.Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn, nil
	}

	conn, err := c.dial(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	c.conn = conn

	// Set up connection close notification
	go c.handleConnectionClose(conn)

	log.Info("AMQP client connected successfully")
	return conn, nil
}

// handleConnectionClose listens for connection close events
func (c *Client) handleConnectionClose(conn *amqp.Connection) {
	closeErr := conn.NotifyClose(make(chan *amqp.Error, 1))

	err := <-closeErr
	if err != nil {
		log.Errorf("AMQP connection closed: %v", err)
	}
}

// OpenChannel opens a fresh channel on the current connection.
func (c *Client) OpenChannel() (*amqp.Channel, error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}

// Close closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}

	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	log.Info("AMQP client closed successfully")
	return nil
}
