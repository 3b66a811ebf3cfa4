package usecase

import (
	"context"
	"sort"
	"time"

	"SpreadCast/internal/domain/models"
	drepo "SpreadCast/internal/domain/repository"
)

// ForecastAggregator orchestrates the pipeline: read-through cache →
// loader → window filter → error synthesis → derived tables. Every load
// recomputes the derived views from scratch; only the parsed record
// sequence is cached, keyed by source identifier.
type ForecastAggregator struct {
	fetcher  drepo.SourceFetcher
	cache    drepo.RecordCache
	metrics  drepo.Metrics
	loader   *Loader
	ensemble *EnsembleAggregator

	sourceID   string
	windowDays int
	cacheTTL   time.Duration
}

// NewForecastAggregator wires the pipeline for one source.
func NewForecastAggregator(
	fetcher drepo.SourceFetcher,
	cache drepo.RecordCache,
	metrics drepo.Metrics,
	loader *Loader,
	sourceID string,
	windowDays int,
	cacheTTL time.Duration,
) *ForecastAggregator {
	return &ForecastAggregator{
		fetcher:    fetcher,
		cache:      cache,
		metrics:    metrics,
		loader:     loader,
		ensemble:   NewEnsembleAggregator(metrics, sourceID),
		sourceID:   sourceID,
		windowDays: windowDays,
		cacheTTL:   cacheTTL,
	}
}

// Records returns the parsed record sequence for the source, serving
// repeated calls from the cache within the configured TTL.
func (a *ForecastAggregator) Records(ctx context.Context) ([]models.ForecastRecord, error) {
	if a.cache != nil {
		if records, ok := a.cache.Get(ctx, a.sourceID); ok {
			if a.metrics != nil {
				a.metrics.RecordCacheHit(a.sourceID)
			}
			return records, nil
		}
	}

	start := time.Now()
	data, err := a.fetcher.Fetch(ctx, a.sourceID)
	if err != nil {
		if a.metrics != nil {
			a.metrics.RecordLoadError("unavailable")
		}
		return nil, err
	}

	records, err := a.loader.Parse(data)
	if err != nil {
		if a.metrics != nil {
			a.metrics.RecordLoadError("malformed")
		}
		return nil, err
	}

	if a.metrics != nil {
		a.metrics.RecordRowsLoaded(a.sourceID, len(records))
		a.metrics.RecordLatency("load", time.Since(start).Seconds())
	}

	if a.cache != nil {
		a.cache.Set(ctx, a.sourceID, records, a.cacheTTL)
	}
	return records, nil
}

// windowed returns the synthesized records inside the window anchored at
// the given date. An empty result is returned as such; callers decide
// whether that is a signal.
func (a *ForecastAggregator) windowed(ctx context.Context, anchor time.Time) ([]models.ForecastRecord, error) {
	records, err := a.Records(ctx)
	if err != nil {
		return nil, err
	}
	return SynthesizeErrors(FilterWindow(records, anchor, a.windowDays)), nil
}

// Distribution produces Table A: one point per windowed record carrying a
// forecast value, sorted by day then forecaster for stable rendering.
func (a *ForecastAggregator) Distribution(ctx context.Context, anchor time.Time) ([]models.DistributionPoint, error) {
	recs, err := a.windowed(ctx, anchor)
	if err != nil {
		return nil, err
	}

	points := make([]models.DistributionPoint, 0, len(recs))
	for _, r := range recs {
		if r.Forecasted == nil {
			continue
		}
		points = append(points, models.DistributionPoint{
			Day:        *r.ForecastDate,
			Forecaster: r.Forecaster,
			Forecasted: *r.Forecasted,
		})
	}
	if len(points) == 0 {
		return nil, models.ErrEmptyWindow
	}

	sort.SliceStable(points, func(i, j int) bool {
		if !points[i].Day.Equal(points[j].Day) {
			return points[i].Day.Before(points[j].Day)
		}
		return points[i].Forecaster < points[j].Forecaster
	})
	return points, nil
}

// DailySummaries produces the per-day ensemble aggregates in the window.
func (a *ForecastAggregator) DailySummaries(ctx context.Context, anchor time.Time) ([]models.DailyEnsembleSummary, error) {
	recs, err := a.windowed(ctx, anchor)
	if err != nil {
		return nil, err
	}
	summaries := a.ensemble.Summarize(recs)
	if len(summaries) == 0 {
		return nil, models.ErrEmptyWindow
	}
	return summaries, nil
}

// Ranking produces Table B for the window anchored at the given date.
func (a *ForecastAggregator) Ranking(ctx context.Context, anchor time.Time) ([]models.RankingRow, error) {
	recs, err := a.windowed(ctx, anchor)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, models.ErrEmptyWindow
	}
	return ComposeRanking(recs, a.ensemble.Summarize(recs))
}
