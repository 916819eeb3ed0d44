package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	// CheckoutKeyPrefix holds the signed checkout form between payment
	// initiation and the payer's browser fetching the checkout page.
	CheckoutKeyPrefix = "checkout"
	SettingsKeyPrefix = "settings"
)
