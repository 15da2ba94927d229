package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 24 * time.Hour
	keyPrefix  = "catalog:export:delivered:"
)

// DeliveryTracker stores one key per export message that produced a mail.
type DeliveryTracker struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewDeliveryTracker(rdb *goredis.Client, ttl time.Duration) *DeliveryTracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DeliveryTracker{
		rdb: rdb,
		ttl: ttl,
	}
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("unable to parse redis url: %w", err)
	}

	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}
	return rdb, nil
}

func (t *DeliveryTracker) Delivered(ctx context.Context, messageID string) (bool, error) {
	_, err := t.rdb.Get(ctx, keyPrefix+messageID).Result()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (t *DeliveryTracker) MarkDelivered(ctx context.Context, messageID string) error {
	return t.rdb.Set(ctx, keyPrefix+messageID, time.Now().UTC().Format(time.RFC3339), t.ttl).Err()
}
