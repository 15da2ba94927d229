package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRecipient(t *testing.T) {
	for _, address := range []string{"admin@example.com", "first.last@cine.fr", "a+tag@cine.fr"} {
		assert.NoError(t, CheckRecipient(address), address)
	}

	for _, address := range []string{
		"",
		"admin",
		"admin@example.com.",
		"a@ex..ample.com",
		"Admin <admin@example.com>",
		" admin@example.com",
	} {
		assert.ErrorIs(t, CheckRecipient(address), ErrInvalidAddress, address)
	}
}

func TestRetryable(t *testing.T) {
	assert.False(t, Retryable(nil))
	assert.False(t, Retryable(ErrMalformedMessage))
	assert.True(t, Retryable(ErrCatalogUnavailable))
	assert.True(t, Retryable(ErrDeliveryFailure))
}
