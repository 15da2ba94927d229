package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/mocks"
)

type ExportWorkerSuite struct {
	suite.Suite
	catalog *mocks.CatalogReader
	mailer  *mocks.MailDispatcher
	tracker *mocks.DeliveryTracker
	worker  *ExportWorker
}

func TestExportWorker(t *testing.T) {
	suite.Run(t, new(ExportWorkerSuite))
}

func (suite *ExportWorkerSuite) SetupTest() {
	suite.catalog = mocks.NewCatalogReader(suite.T())
	suite.mailer = mocks.NewMailDispatcher(suite.T())
	suite.tracker = mocks.NewDeliveryTracker(suite.T())
	suite.worker = NewExportWorker(suite.catalog, suite.mailer, nil, validator.New())
}

func (suite *ExportWorkerSuite) envelope(body string) domain.Envelope {
	return domain.Envelope{
		MessageID: "msg-1",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Body:      []byte(body),
	}
}

func (suite *ExportWorkerSuite) catalogEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		{Title: "Inception", ReleaseDate: date(2010, time.July, 16), Director: "Christopher Nolan"},
		{Title: "Arrival", ReleaseDate: date(2016, time.November, 11), Director: "Denis Villeneuve"},
	}
}

func (suite *ExportWorkerSuite) TestProcess_SendsCSVToRequester() {
	ctx := context.Background()

	suite.catalog.EXPECT().ListAll(ctx).Return(suite.catalogEntries(), nil).Once()
	suite.mailer.EXPECT().Send(ctx, mock.Anything).
		Run(func(_ context.Context, mail domain.Mail) {
			suite.Equal("admin@example.com", mail.To)
			suite.Equal(domain.ExportSubject, mail.Subject)
			suite.Equal(domain.ExportBody, mail.Text)
			suite.Require().Len(mail.Attachments, 1)
			suite.Equal("movies.csv", mail.Attachments[0].Filename)
			suite.Equal("text/csv", mail.Attachments[0].ContentType)
			suite.Equal(
				"title,description,releaseDate,director,createdAt,updatedAt\n"+
					"Inception,,2010-07-16,Christopher Nolan,,\n"+
					"Arrival,,2016-11-11,Denis Villeneuve,,\n",
				string(mail.Attachments[0].Data),
			)
		}).
		Return(nil).Once()

	err := suite.worker.Process(ctx, suite.envelope(`{"email":"admin@example.com"}`))

	suite.NoError(err)
}

func (suite *ExportWorkerSuite) TestProcess_EmptyCatalogSendsHeaderOnly() {
	ctx := context.Background()

	suite.catalog.EXPECT().ListAll(ctx).Return(nil, nil).Once()
	suite.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(mail domain.Mail) bool {
		return len(mail.Attachments) == 1 &&
			string(mail.Attachments[0].Data) == "title,description,releaseDate,director,createdAt,updatedAt\n"
	})).Return(nil).Once()

	suite.NoError(suite.worker.Process(ctx, suite.envelope(`{"email":"admin@cine.fr"}`)))
}

func (suite *ExportWorkerSuite) TestProcess_InvalidJSONIsMalformed() {
	err := suite.worker.Process(context.Background(), suite.envelope(`not json`))

	suite.ErrorIs(err, domain.ErrMalformedMessage)
	suite.False(domain.Retryable(err))
}

func (suite *ExportWorkerSuite) TestProcess_MissingEmailIsMalformed() {
	for _, body := range []string{
		`{}`,
		`{"email":""}`,
		`{"email":"not-an-address"}`,
		`{"mail":"admin@cine.fr"}`,
		`{"email":"admin@example.com."}`,
		`{"email":"a@ex..ample.com"}`,
	} {
		err := suite.worker.Process(context.Background(), suite.envelope(body))

		suite.ErrorIs(err, domain.ErrMalformedMessage, body)
	}
}

func (suite *ExportWorkerSuite) TestProcess_CatalogFailureIsRetryable() {
	ctx := context.Background()

	suite.catalog.EXPECT().ListAll(ctx).Return(nil, errors.New("connection refused")).Once()

	err := suite.worker.Process(ctx, suite.envelope(`{"email":"admin@cine.fr"}`))

	suite.ErrorIs(err, domain.ErrCatalogUnavailable)
	suite.True(domain.Retryable(err))
	suite.mailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything)
}

func (suite *ExportWorkerSuite) TestProcess_DeliveryFailureIsRetryable() {
	ctx := context.Background()

	suite.catalog.EXPECT().ListAll(ctx).Return(suite.catalogEntries(), nil).Once()
	suite.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp: 421 service not available")).Once()

	err := suite.worker.Process(ctx, suite.envelope(`{"email":"admin@cine.fr"}`))

	suite.ErrorIs(err, domain.ErrDeliveryFailure)
	suite.True(domain.Retryable(err))
}

func (suite *ExportWorkerSuite) TestProcess_SkipsAlreadyDeliveredMessage() {
	ctx := context.Background()
	worker := NewExportWorker(suite.catalog, suite.mailer, suite.tracker, validator.New())

	suite.tracker.EXPECT().Delivered(ctx, "msg-1").Return(true, nil).Once()

	err := worker.Process(ctx, suite.envelope(`{"email":"admin@cine.fr"}`))

	suite.NoError(err)
	suite.catalog.AssertNotCalled(suite.T(), "ListAll", mock.Anything)
}

func (suite *ExportWorkerSuite) TestProcess_MarksDeliveredAfterSend() {
	ctx := context.Background()
	worker := NewExportWorker(suite.catalog, suite.mailer, suite.tracker, validator.New())

	suite.tracker.EXPECT().Delivered(ctx, "msg-1").Return(false, nil).Once()
	suite.catalog.EXPECT().ListAll(ctx).Return(suite.catalogEntries(), nil).Once()
	suite.mailer.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()
	suite.tracker.EXPECT().MarkDelivered(ctx, "msg-1").Return(nil).Once()

	suite.NoError(worker.Process(ctx, suite.envelope(`{"email":"admin@cine.fr"}`)))
}

func (suite *ExportWorkerSuite) TestProcess_TrackerFailuresDoNotFailJob() {
	ctx := context.Background()
	worker := NewExportWorker(suite.catalog, suite.mailer, suite.tracker, validator.New())

	suite.tracker.EXPECT().Delivered(ctx, "msg-1").Return(false, errors.New("redis down")).Once()
	suite.catalog.EXPECT().ListAll(ctx).Return(suite.catalogEntries(), nil).Once()
	suite.mailer.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()
	suite.tracker.EXPECT().MarkDelivered(ctx, "msg-1").Return(errors.New("redis down")).Once()

	suite.NoError(worker.Process(ctx, suite.envelope(`{"email":"admin@cine.fr"}`)))
}

func (suite *ExportWorkerSuite) TestProcess_RecipientRefusedByMailerIsDropped() {
	ctx := context.Background()

	suite.catalog.EXPECT().ListAll(ctx).Return(suite.catalogEntries(), nil).Once()
	suite.mailer.EXPECT().Send(ctx, mock.Anything).
		Return(fmt.Errorf("%w: mail: no angle-addr", domain.ErrInvalidAddress)).Once()

	err := suite.worker.Process(ctx, suite.envelope(`{"email":"admin@cine.fr"}`))

	suite.ErrorIs(err, domain.ErrMalformedMessage)
	suite.False(domain.Retryable(err))
}
