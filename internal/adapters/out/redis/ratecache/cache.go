// Package ratecache decorates the rate repository with a Redis cache.
// Rates change rarely and every shipment creation reads one, so a short TTL
// removes most of the read load from PostgreSQL. The cache degrades
// gracefully: any Redis failure falls through to the wrapped repository.
package ratecache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
	"shipping/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rate:active:"

// cachedRate is the serialized form of a rate stored in Redis.
type cachedRate struct {
	ID                       string  `json:"id"`
	CityTier                 string  `json:"city_tier"`
	BaseRate                 float64 `json:"base_rate"`
	FragileMultiplier        float64 `json:"fragile_multiplier"`
	WeightMultiplier         float64 `json:"weight_multiplier"`
	SizeMultiplier           float64 `json:"size_multiplier"`
	DeliveryOptionMultiplier float64 `json:"delivery_option_multiplier"`
}

// CachedRateRepository wraps a RateRepository with a Redis read-through cache
// keyed by city tier.
type CachedRateRepository struct {
	inner  ports.RateRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRateRepository creates a read-through cache around inner.
func NewCachedRateRepository(
	inner ports.RateRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedRateRepository {
	return &CachedRateRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Add delegates to the wrapped repository and invalidates the tier's cache
// entry so the next read observes the new rate.
func (r *CachedRateRepository) Add(ctx context.Context, aggregate *rate.Rate) error {
	if err := r.inner.Add(ctx, aggregate); err != nil {
		return err
	}

	if err := r.client.Del(ctx, keyPrefix+aggregate.CityTier().String()).Err(); err != nil {
		r.logger.Warn("rate cache invalidation failed",
			"tier", aggregate.CityTier().String(), "error", err)
	}
	return nil
}

// GetActiveByTier reads the active rate for a tier, preferring the cache.
// Cache misses and Redis failures fall through to the wrapped repository.
func (r *CachedRateRepository) GetActiveByTier(ctx context.Context, tier rate.CityTier) (*rate.Rate, error) {
	if err := tier.Validate(); err != nil {
		return nil, err
	}

	key := keyPrefix + tier.String()
	if cached, err := r.lookup(ctx, key); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("rate cache read failed", "tier", tier.String(), "error", err)
	}

	fresh, err := r.inner.GetActiveByTier(ctx, tier)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, fresh)
	return fresh, nil
}

func (r *CachedRateRepository) lookup(ctx context.Context, key string) (*rate.Rate, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var dto cachedRate
	if err = json.Unmarshal(raw, &dto); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	tier, err := rate.CityTierFromString(dto.CityTier)
	if err != nil {
		return nil, err
	}

	return rate.RestoreRate(
		id,
		tier,
		dto.BaseRate,
		dto.FragileMultiplier,
		dto.WeightMultiplier,
		dto.SizeMultiplier,
		dto.DeliveryOptionMultiplier,
	)
}

func (r *CachedRateRepository) store(ctx context.Context, key string, fresh *rate.Rate) {
	raw, err := json.Marshal(cachedRate{
		ID:                       fresh.ID().String(),
		CityTier:                 fresh.CityTier().String(),
		BaseRate:                 fresh.BaseRate(),
		FragileMultiplier:        fresh.FragileMultiplier(),
		WeightMultiplier:         fresh.WeightMultiplier(),
		SizeMultiplier:           fresh.SizeMultiplier(),
		DeliveryOptionMultiplier: fresh.DeliveryOptionMultiplier(),
	})
	if err != nil {
		r.logger.Warn("rate cache serialization failed", "error", err)
		return
	}

	if err = r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("rate cache write failed", "key", key, "error", err)
	}
}
