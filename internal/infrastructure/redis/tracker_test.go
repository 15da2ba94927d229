package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type DeliveryTrackerSuite struct {
	suite.Suite
	server  *miniredis.Miniredis
	rdb     *goredis.Client
	tracker *DeliveryTracker
}

func TestDeliveryTracker(t *testing.T) {
	suite.Run(t, new(DeliveryTrackerSuite))
}

func (suite *DeliveryTrackerSuite) SetupTest() {
	suite.server = miniredis.RunT(suite.T())
	rdb, err := NewClient(context.Background(), "redis://"+suite.server.Addr())
	suite.Require().NoError(err)
	suite.rdb = rdb
	suite.tracker = NewDeliveryTracker(rdb, time.Hour)
}

func (suite *DeliveryTrackerSuite) TearDownTest() {
	_ = suite.rdb.Close()
}

func (suite *DeliveryTrackerSuite) TestDelivered_UnknownMessage() {
	delivered, err := suite.tracker.Delivered(context.Background(), "msg-1")

	suite.NoError(err)
	suite.False(delivered)
}

func (suite *DeliveryTrackerSuite) TestMarkDelivered() {
	ctx := context.Background()

	suite.Require().NoError(suite.tracker.MarkDelivered(ctx, "msg-1"))

	delivered, err := suite.tracker.Delivered(ctx, "msg-1")
	suite.NoError(err)
	suite.True(delivered)
	suite.Equal(time.Hour, suite.server.TTL(keyPrefix+"msg-1"))

	other, err := suite.tracker.Delivered(ctx, "msg-2")
	suite.NoError(err)
	suite.False(other)
}

func (suite *DeliveryTrackerSuite) TestMarkerExpires() {
	ctx := context.Background()
	suite.Require().NoError(suite.tracker.MarkDelivered(ctx, "msg-1"))

	suite.server.FastForward(2 * time.Hour)

	delivered, err := suite.tracker.Delivered(ctx, "msg-1")
	suite.NoError(err)
	suite.False(delivered)
}

func (suite *DeliveryTrackerSuite) TestDelivered_ServerDown() {
	suite.server.Close()

	_, err := suite.tracker.Delivered(context.Background(), "msg-1")

	suite.Error(err)
}

func (suite *DeliveryTrackerSuite) TestDefaultTTL() {
	tracker := NewDeliveryTracker(suite.rdb, 0)

	suite.Equal(DefaultTTL, tracker.ttl)
}
