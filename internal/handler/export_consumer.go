package handler

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/port"
)

type exportJob struct {
	delivery port.Delivery
}

// ExportConsumer runs export jobs on a fixed pool of workers and settles every
// delivery from the job outcome: success and malformed payloads are
// acknowledged, every other failure is requeued for redelivery.
type ExportConsumer struct {
	exportWorker port.ExportWorker
	jobQueue     chan exportJob
	wg           sync.WaitGroup
	numWorkers   int
	jobTimeout   time.Duration
	retryDelay   time.Duration

	mu       sync.RWMutex
	closed   bool
	stopping chan struct{}
}

func NewExportConsumer(
	exportWorker port.ExportWorker,
	numWorkers int,
	jobTimeout time.Duration,
	retryDelay time.Duration,
) *ExportConsumer {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &ExportConsumer{
		exportWorker: exportWorker,
		jobQueue:     make(chan exportJob),
		numWorkers:   numWorkers,
		jobTimeout:   jobTimeout,
		retryDelay:   retryDelay,
		stopping:     make(chan struct{}),
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *ExportConsumer) Start() {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(i)
	}
	log.Infof("Started %d export workers", c.numWorkers)
}

// Stop waits for in-flight jobs. Call it after the consumer stopped
// delivering. Jobs still running when ctx ends stay unacknowledged.
func (c *ExportConsumer) Stop(ctx context.Context) {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.stopping)
		close(c.jobQueue)
	}
	c.mu.Unlock()

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All export workers stopped after draining")
	case <-ctx.Done():
		log.Warn("Export workers still busy at shutdown deadline")
	}
}

// Handle hands a delivery to the pool, blocking while every worker is busy.
func (c *ExportConsumer) Handle(ctx context.Context, delivery port.Delivery) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		c.requeue(delivery)
		return
	}

	select {
	case c.jobQueue <- exportJob{delivery: delivery}:
	case <-ctx.Done():
		c.requeue(delivery)
	}
}

func (c *ExportConsumer) worker(workerID int) {
	defer c.wg.Done()
	for job := range c.jobQueue {
		c.process(workerID, job)
	}
	log.Debugf("[ExportWorker %d] Queue closed, stopping", workerID)
}

func (c *ExportConsumer) process(workerID int, job exportJob) {
	envelope := job.delivery.Envelope()
	logger := log.WithFields(log.Fields{
		"worker":        workerID,
		"messageId":     envelope.MessageID,
		"redelivered":   envelope.Redelivered,
		"deliveryCount": envelope.DeliveryCount,
	})

	// In-flight jobs are never cancelled; only the collaborator timeout applies.
	ctx, cancel := context.WithTimeout(context.Background(), c.jobTimeout)
	defer cancel()

	err := c.run(ctx, envelope)
	switch {
	case err == nil:
		if ackErr := job.delivery.Ack(); ackErr != nil {
			logger.WithError(ackErr).Error("Failed to acknowledge export message")
		}
	case !domain.Retryable(err):
		logger.WithError(err).Warn("Dropping malformed export message")
		if ackErr := job.delivery.Ack(); ackErr != nil {
			logger.WithError(ackErr).Error("Failed to acknowledge malformed export message")
		}
	default:
		logger.WithError(err).Error("Export job failed, leaving message for redelivery")
		c.pause()
		if nackErr := job.delivery.Nack(true); nackErr != nil {
			logger.WithError(nackErr).Error("Failed to requeue export message")
		}
	}
}

// run keeps a panicking job from taking the worker down.
func (c *ExportConsumer) run(ctx context.Context, envelope domain.Envelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("export job panicked: %v", r)
		}
	}()
	return c.exportWorker.Process(ctx, envelope)
}

// pause spaces out redeliveries while a collaborator is down.
func (c *ExportConsumer) pause() {
	if c.retryDelay <= 0 {
		return
	}
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-c.stopping:
	}
}

func (c *ExportConsumer) requeue(delivery port.Delivery) {
	if err := delivery.Nack(true); err != nil {
		log.WithError(err).Error("Failed to requeue export message")
	}
}
