// Package cache holds the tenant application-list cache. Every successful
// create, transition, or delete must drop the owning tenant's cached list so
// callers never see a stale view of a case they just changed.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"caseflow/internal/application/models"
	id "caseflow/pkg/domain"
)

// ListCache is what the application service needs from a cache. Get returns
// (nil, false, nil) on a miss so a cold cache and an unavailable one look the
// same to the read path.
type ListCache interface {
	Get(ctx context.Context, companyID id.CompanyID) ([]*models.Application, bool, error)
	Set(ctx context.Context, companyID id.CompanyID, apps []*models.Application) error
	Invalidate(ctx context.Context, companyID id.CompanyID) error
}

const defaultTTL = 5 * time.Minute

// RedisCache caches per-tenant application lists in Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, ttl: defaultTTL}
}

func key(companyID id.CompanyID) string {
	return "caseflow:applications:" + companyID.String()
}

func (c *RedisCache) Get(ctx context.Context, companyID id.CompanyID) ([]*models.Application, bool, error) {
	raw, err := c.client.Get(ctx, key(companyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var apps []*models.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		// A corrupt entry is a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return apps, true, nil
}

func (c *RedisCache) Set(ctx context.Context, companyID id.CompanyID, apps []*models.Application) error {
	raw, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, key(companyID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, companyID id.CompanyID) error {
	if err := c.client.Del(ctx, key(companyID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// Noop satisfies ListCache when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, id.CompanyID) ([]*models.Application, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, id.CompanyID, []*models.Application) error { return nil }

func (Noop) Invalidate(context.Context, id.CompanyID) error { return nil }
