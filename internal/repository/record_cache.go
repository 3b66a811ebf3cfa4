package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"SpreadCast/internal/domain/models"
	drepo "SpreadCast/internal/domain/repository"
	pkgcache "SpreadCast/pkg/cache"
)

// CachedRecords implements the read-through record cache over a cache
// Service (memory or layered), keyed by source identifier.
type CachedRecords struct {
	cache pkgcache.Service
}

// NewRecordCache wraps a cache Service as a RecordCache.
func NewRecordCache(c pkgcache.Service) drepo.RecordCache {
	return &CachedRecords{cache: c}
}

func (c *CachedRecords) Get(ctx context.Context, sourceID string) ([]models.ForecastRecord, bool) {
	var raw string
	key := pkgcache.SourceKey("records", sourceID)
	if err := c.cache.Get(ctx, key, &raw); err != nil {
		if !errors.Is(err, pkgcache.ErrCacheMiss) {
			return nil, false
		}
		return nil, false
	}

	var records []models.ForecastRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, false
	}
	return records, true
}

func (c *CachedRecords) Set(ctx context.Context, sourceID string, records []models.ForecastRecord, ttl time.Duration) {
	b, err := json.Marshal(records)
	if err != nil {
		return
	}
	key := pkgcache.SourceKey("records", sourceID)
	_ = c.cache.Set(ctx, key, string(b), ttl)
}
