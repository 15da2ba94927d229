package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"cineiut.com/catalog/internal/core/domain"
	"cineiut.com/catalog/mocks"
)

type ExportProducerSuite struct {
	suite.Suite
	publisher *mocks.ExportPublisher
	producer  *ExportProducer
}

func TestExportProducer(t *testing.T) {
	suite.Run(t, new(ExportProducerSuite))
}

func (suite *ExportProducerSuite) SetupTest() {
	suite.publisher = mocks.NewExportPublisher(suite.T())
	suite.producer = NewExportProducer(suite.publisher, validator.New())
	suite.producer.now = func() time.Time {
		return time.Date(2024, 5, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	}
}

func (suite *ExportProducerSuite) TestSubmit_PublishesRequest() {
	ctx := context.Background()

	suite.publisher.EXPECT().PublishExport(ctx, mock.MatchedBy(func(r domain.ExportRequest) bool {
		return r.DestinationAddress == "admin@cine.fr" &&
			r.MessageID != "" &&
			r.RequestedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) &&
			r.RequestedAt.Location() == time.UTC
	})).Return(nil).Once()

	request, err := suite.producer.Submit(ctx, "admin@cine.fr")

	suite.Require().NoError(err)
	suite.Equal("admin@cine.fr", request.DestinationAddress)
	suite.Equal(domain.ExportMessage{Email: "admin@cine.fr"}, request.Message())
}

func (suite *ExportProducerSuite) TestSubmit_EachRequestGetsItsOwnID() {
	ctx := context.Background()

	suite.publisher.EXPECT().PublishExport(ctx, mock.Anything).Return(nil).Twice()

	first, err := suite.producer.Submit(ctx, "admin@cine.fr")
	suite.Require().NoError(err)
	second, err := suite.producer.Submit(ctx, "admin@cine.fr")
	suite.Require().NoError(err)

	suite.NotEqual(first.MessageID, second.MessageID)
}

func (suite *ExportProducerSuite) TestSubmit_InvalidAddress() {
	for _, address := range []string{"", "admin", "admin@", "admin@example.com.", "a@ex..ample.com"} {
		request, err := suite.producer.Submit(context.Background(), address)

		suite.Nil(request)
		suite.ErrorIs(err, domain.ErrInvalidAddress, address)
	}
	suite.publisher.AssertNotCalled(suite.T(), "PublishExport", mock.Anything, mock.Anything)
}

func (suite *ExportProducerSuite) TestSubmit_QueueUnavailable() {
	ctx := context.Background()
	brokerErr := errors.New("dial tcp: connection refused")

	suite.publisher.EXPECT().PublishExport(ctx, mock.Anything).Return(brokerErr).Once()

	request, err := suite.producer.Submit(ctx, "admin@cine.fr")

	suite.Nil(request)
	suite.ErrorIs(err, domain.ErrQueueUnavailable)
	suite.ErrorIs(err, brokerErr)
}
