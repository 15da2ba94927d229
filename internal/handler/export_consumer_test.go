package handler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/internal/core/service"
	"cineiut.com/catalog/internal/infrastructure/memqueue"
	"cineiut.com/catalog/mocks"
)

type settlement struct {
	acked   bool
	requeue bool
}

type fakeDelivery struct {
	envelope domain.Envelope
	settled  chan settlement
}

func newFakeDelivery(id string) *fakeDelivery {
	return &fakeDelivery{
		envelope: domain.Envelope{MessageID: id, Body: []byte(`{"email":"admin@cine.fr"}`)},
		settled:  make(chan settlement, 1),
	}
}

func (d *fakeDelivery) Envelope() domain.Envelope { return d.envelope }

func (d *fakeDelivery) Ack() error {
	d.settled <- settlement{acked: true}
	return nil
}

func (d *fakeDelivery) Nack(requeue bool) error {
	d.settled <- settlement{requeue: requeue}
	return nil
}

func (d *fakeDelivery) outcome(suite *ExportConsumerSuite) settlement {
	select {
	case s := <-d.settled:
		return s
	case <-time.After(5 * time.Second):
		suite.FailNow("delivery was never settled")
		return settlement{}
	}
}

type ExportConsumerSuite struct {
	suite.Suite
	worker   *mocks.ExportWorker
	consumer *ExportConsumer
}

func TestExportConsumer(t *testing.T) {
	suite.Run(t, new(ExportConsumerSuite))
}

func (suite *ExportConsumerSuite) SetupTest() {
	suite.worker = mocks.NewExportWorker(suite.T())
	suite.consumer = NewExportConsumer(suite.worker, 2, time.Second, 0)
	suite.consumer.Start()
}

func (suite *ExportConsumerSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	suite.consumer.Stop(ctx)
}

func (suite *ExportConsumerSuite) TestHandle_AcksOnSuccess() {
	delivery := newFakeDelivery("msg-1")

	suite.worker.EXPECT().Process(mock.Anything, delivery.envelope).Return(nil).Once()

	suite.consumer.Handle(context.Background(), delivery)

	suite.Equal(settlement{acked: true}, delivery.outcome(suite))
}

func (suite *ExportConsumerSuite) TestHandle_AcksMalformedMessage() {
	delivery := newFakeDelivery("msg-1")

	suite.worker.EXPECT().Process(mock.Anything, delivery.envelope).
		Return(fmt.Errorf("%w: missing email", domain.ErrMalformedMessage)).Once()

	suite.consumer.Handle(context.Background(), delivery)

	suite.Equal(settlement{acked: true}, delivery.outcome(suite))
}

func (suite *ExportConsumerSuite) TestHandle_RequeuesOnRetryableFailure() {
	for _, cause := range []error{domain.ErrCatalogUnavailable, domain.ErrDeliveryFailure, errors.New("unexpected")} {
		delivery := newFakeDelivery("msg-1")

		suite.worker.EXPECT().Process(mock.Anything, delivery.envelope).Return(cause).Once()

		suite.consumer.Handle(context.Background(), delivery)

		suite.Equal(settlement{requeue: true}, delivery.outcome(suite), cause.Error())
	}
}

func (suite *ExportConsumerSuite) TestHandle_RequeuesOnPanic() {
	delivery := newFakeDelivery("msg-1")

	suite.worker.EXPECT().Process(mock.Anything, delivery.envelope).
		RunAndReturn(func(context.Context, domain.Envelope) error { panic("boom") }).Once()

	suite.consumer.Handle(context.Background(), delivery)

	suite.Equal(settlement{requeue: true}, delivery.outcome(suite))

	// The pool survives the panic.
	next := newFakeDelivery("msg-2")
	suite.worker.EXPECT().Process(mock.Anything, next.envelope).Return(nil).Once()
	suite.consumer.Handle(context.Background(), next)
	suite.Equal(settlement{acked: true}, next.outcome(suite))
}

func (suite *ExportConsumerSuite) TestHandle_JobContextHasTimeout() {
	delivery := newFakeDelivery("msg-1")

	suite.worker.EXPECT().Process(mock.Anything, delivery.envelope).
		RunAndReturn(func(ctx context.Context, _ domain.Envelope) error {
			_, ok := ctx.Deadline()
			suite.True(ok)
			return nil
		}).Once()

	suite.consumer.Handle(context.Background(), delivery)

	suite.Equal(settlement{acked: true}, delivery.outcome(suite))
}

func (suite *ExportConsumerSuite) TestHandle_RequeuesAfterStop() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	suite.consumer.Stop(ctx)

	delivery := newFakeDelivery("msg-1")
	suite.consumer.Handle(context.Background(), delivery)

	suite.Equal(settlement{requeue: true}, delivery.outcome(suite))
}

func (suite *ExportConsumerSuite) TestStop_WaitsForInFlightJob() {
	delivery := newFakeDelivery("msg-1")
	started := make(chan struct{})
	release := make(chan struct{})

	suite.worker.EXPECT().Process(mock.Anything, delivery.envelope).
		RunAndReturn(func(context.Context, domain.Envelope) error {
			close(started)
			<-release
			return nil
		}).Once()

	suite.consumer.Handle(context.Background(), delivery)
	<-started

	stopped := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		suite.consumer.Stop(ctx)
		close(stopped)
	}()

	select {
	case <-stopped:
		suite.Fail("Stop returned while a job was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	suite.Equal(settlement{acked: true}, delivery.outcome(suite))
	<-stopped
}

type flakyMailer struct {
	mu       sync.Mutex
	failures int
	sent     []domain.Mail
}

func (m *flakyMailer) Send(_ context.Context, mail domain.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("smtp: 421 try again later")
	}
	m.sent = append(m.sent, mail)
	return nil
}

func (m *flakyMailer) Sent() []domain.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Mail(nil), m.sent...)
}

// A transient mail failure is retried through the queue and the export is
// delivered exactly once.
func TestExportConsumer_RedeliversTransientFailure(t *testing.T) {
	catalog := mocks.NewCatalogReader(t)
	catalog.EXPECT().ListAll(mock.Anything).Return([]domain.CatalogEntry{{Title: "Arrival"}}, nil).Times(2)

	mailer := &flakyMailer{failures: 1}
	worker := service.NewExportWorker(catalog, mailer, nil, validator.New())
	consumer := NewExportConsumer(worker, 1, time.Second, 10*time.Millisecond)
	consumer.Start()

	queue := memqueue.New(8)
	producer := service.NewExportProducer(queue, validator.New())

	ctx, cancel := context.WithCancel(context.Background())
	go queue.Consume(ctx, consumer)

	_, err := producer.Submit(context.Background(), "admin@cine.fr")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(mailer.Sent()) > 0 && queue.Unacked() == 0 && queue.Ready() == 0
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	consumer.Stop(stopCtx)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "admin@cine.fr", sent[0].To)
	assert.Empty(t, queue.Dead())
}
