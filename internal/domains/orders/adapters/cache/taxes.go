package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/Apurer/order-entry/internal/domains/orders/domain"
	"github.com/Apurer/order-entry/internal/domains/orders/ports"
)

// DefaultTTL bounds how long a destination's taxes stay cached.
const DefaultTTL = 5 * time.Minute

var _ ports.TaxLookup = (*TaxLookup)(nil)

// TaxLookup is a read-through Redis cache in front of another TaxLookup.
// Cache errors never fail a lookup; they are logged and the inner lookup answers.
type TaxLookup struct {
	inner     ports.TaxLookup
	client    redis.Cmdable
	namespace string
	ttl       time.Duration
	logger    *slog.Logger
}

type Option func(*TaxLookup)

func WithTTL(ttl time.Duration) Option {
	return func(c *TaxLookup) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *TaxLookup) {
		c.logger = logger
	}
}

func WithNamespace(namespace string) Option {
	return func(c *TaxLookup) {
		if namespace = strings.TrimSpace(namespace); namespace != "" {
			c.namespace = namespace
		}
	}
}

func NewTaxLookup(inner ports.TaxLookup, client redis.Cmdable, opts ...Option) *TaxLookup {
	c := &TaxLookup{
		inner:     inner,
		client:    client,
		namespace: "order-entry",
		ttl:       DefaultTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

type cachedTaxEntry struct {
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
}

func (c *TaxLookup) GetTaxEntries(ctx context.Context, postalCode, country string) ([]domain.TaxEntry, error) {
	key := c.key(postalCode, country)
	if entries, ok := c.read(ctx, key); ok {
		return entries, nil
	}
	entries, err := c.inner.GetTaxEntries(ctx, postalCode, country)
	if err != nil {
		return nil, err
	}
	c.write(ctx, key, entries)
	return entries, nil
}

func (c *TaxLookup) key(postalCode, country string) string {
	return fmt.Sprintf("%s:tax:%s:%s", c.namespace,
		strings.TrimSpace(postalCode), strings.ToUpper(strings.TrimSpace(country)))
}

func (c *TaxLookup) read(ctx context.Context, key string) ([]domain.TaxEntry, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.warn(ctx, "tax cache read failed", key, err)
		return nil, false
	}
	var cached []cachedTaxEntry
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.warn(ctx, "tax cache entry is corrupt", key, err)
		return nil, false
	}
	entries := make([]domain.TaxEntry, 0, len(cached))
	for _, e := range cached {
		entries = append(entries, domain.TaxEntry{Description: e.Description, Rate: e.Rate})
	}
	return entries, true
}

func (c *TaxLookup) write(ctx context.Context, key string, entries []domain.TaxEntry) {
	cached := make([]cachedTaxEntry, 0, len(entries))
	for _, e := range entries {
		cached = append(cached, cachedTaxEntry{Description: e.Description, Rate: e.Rate})
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		c.warn(ctx, "tax cache encode failed", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.warn(ctx, "tax cache write failed", key, err)
	}
}

func (c *TaxLookup) warn(ctx context.Context, msg, key string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("cache.key", key), slog.String("error", err.Error()))
}
