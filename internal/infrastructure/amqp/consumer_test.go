package amqp

import (
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestDeliveryCount(t *testing.T) {
	assert.Equal(t, int64(0), deliveryCount(nil))
	assert.Equal(t, int64(0), deliveryCount(amqp.Table{"x-delivery-count": "3"}))
	assert.Equal(t, int64(3), deliveryCount(amqp.Table{"x-delivery-count": int64(3)}))
	assert.Equal(t, int64(2), deliveryCount(amqp.Table{"x-delivery-count": int32(2)}))
}

func TestDeliveryEnvelope(t *testing.T) {
	sentAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	d := &delivery{msg: amqp.Delivery{
		MessageId:   "msg-1",
		Timestamp:   sentAt,
		Redelivered: true,
		Headers:     amqp.Table{"x-delivery-count": int64(1)},
		Body:        []byte(`{"email":"admin@cine.fr"}`),
	}}

	envelope := d.Envelope()

	assert.Equal(t, "msg-1", envelope.MessageID)
	assert.Equal(t, sentAt, envelope.Timestamp)
	assert.True(t, envelope.Redelivered)
	assert.Equal(t, int64(1), envelope.DeliveryCount)
	assert.JSONEq(t, `{"email":"admin@cine.fr"}`, string(envelope.Body))
}

func TestQueueOptions_DeadLetterQueue(t *testing.T) {
	opts := QueueOptions{Name: "export_movies", DeadLetterExchange: "export.dlx"}

	assert.Equal(t, "export_movies.dead", opts.DeadLetterQueue())
}
