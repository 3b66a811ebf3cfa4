package repository

import (
	"context"
	"time"

	"SpreadCast/internal/domain/models"
)

// SourceFetcher retrieves the raw bytes of a tabular source by identifier
// (URL or filesystem path).
type SourceFetcher interface {
	Fetch(ctx context.Context, sourceID string) ([]byte, error)
}

// RecordCache is the read-through cache of parsed record sequences, keyed
// by source identifier. TTL of zero keeps entries for the process lifetime.
type RecordCache interface {
	Get(ctx context.Context, sourceID string) ([]models.ForecastRecord, bool)
	Set(ctx context.Context, sourceID string, records []models.ForecastRecord, ttl time.Duration)
}

// Metrics abstracts the pipeline's observability counters.
type Metrics interface {
	RecordRowsLoaded(source string, n int)
	RecordLoadError(kind string)
	RecordCacheHit(source string)
	RecordActualDivergence(source string)
	RecordLatency(op string, seconds float64)
}
