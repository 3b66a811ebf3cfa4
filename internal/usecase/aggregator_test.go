package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"SpreadCast/internal/domain/models"
	internalrepo "SpreadCast/internal/repository"
	pkgcache "SpreadCast/pkg/cache"
)

type fakeFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func newTestAggregator(t *testing.T, csv string) (*ForecastAggregator, *fakeFetcher, *fakeMetrics) {
	t.Helper()
	fetcher := &fakeFetcher{data: []byte(csv)}
	m := &fakeMetrics{}
	cache := internalrepo.NewRecordCache(pkgcache.NewMemoryCache())
	agg := NewForecastAggregator(fetcher, cache, m, NewLoader("auto"), "test-source", 14, 0)
	return agg, fetcher, m
}

const sampleCSV = "Date,Pseudonym,Forecasted value,Actual value\n" +
	"2025-08-17 09:00:00,alpha,100,90\n" +
	"2025-08-17 09:30:00,beta,80,90\n" +
	"2025-08-18 09:00:00,alpha,120,100\n" +
	"2025-08-18 10:00:00,gamma,70,\n" // no actual: distribution only

func TestAggregatorDistribution(t *testing.T) {
	agg, _, _ := newTestAggregator(t, sampleCSV)
	anchor := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	points, err := agg.Distribution(context.Background(), anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The row without an actual still feeds the distribution.
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Day.Before(points[i-1].Day) {
			t.Fatalf("points not sorted by day")
		}
	}
}

func TestAggregatorRanking(t *testing.T) {
	agg, _, _ := newTestAggregator(t, sampleCSV)
	anchor := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	rows, err := agg.Ranking(context.Background(), anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := map[string]bool{}
	for _, r := range rows {
		names[r.Name] = true
	}
	// gamma has no actual, so it never reaches the ranking.
	if names["gamma"] {
		t.Fatalf("forecaster without errors leaked into ranking")
	}
	if !names["alpha"] || !names["beta"] {
		t.Fatalf("missing forecaster rows: %v", names)
	}
	if !names[models.MeanEnsembleName] || !names[models.MedianEnsembleName] {
		t.Fatalf("missing ensemble rows: %v", names)
	}
}

func TestAggregatorReadThroughCache(t *testing.T) {
	agg, fetcher, m := newTestAggregator(t, sampleCSV)
	anchor := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	if _, err := agg.Distribution(context.Background(), anchor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := agg.Ranking(context.Background(), anchor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", fetcher.calls)
	}
	if m.cacheHits == 0 {
		t.Fatalf("expected cache hits on repeated loads")
	}
}

func TestAggregatorEmptyWindow(t *testing.T) {
	agg, _, _ := newTestAggregator(t, sampleCSV)
	// Anchor far from the data: nothing falls inside 14 days.
	anchor := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := agg.Distribution(context.Background(), anchor); !errors.Is(err, models.ErrEmptyWindow) {
		t.Fatalf("expected ErrEmptyWindow, got %v", err)
	}
	if _, err := agg.Ranking(context.Background(), anchor); !errors.Is(err, models.ErrEmptyWindow) {
		t.Fatalf("expected ErrEmptyWindow, got %v", err)
	}
	if _, err := agg.DailySummaries(context.Background(), anchor); !errors.Is(err, models.ErrEmptyWindow) {
		t.Fatalf("expected ErrEmptyWindow, got %v", err)
	}
}

func TestAggregatorSourceUnavailable(t *testing.T) {
	fetcher := &fakeFetcher{err: fmt.Errorf("%w: boom", models.ErrSourceUnavailable)}
	m := &fakeMetrics{}
	agg := NewForecastAggregator(fetcher, nil, m, NewLoader("auto"), "test-source", 14, 0)

	_, err := agg.Records(context.Background())
	if !errors.Is(err, models.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if len(m.loadErrors) != 1 || m.loadErrors[0] != "unavailable" {
		t.Fatalf("expected unavailable load error recorded, got %v", m.loadErrors)
	}
}

func TestAggregatorDivergentActuals(t *testing.T) {
	csv := "Date,Pseudonym,Forecasted value,Actual value\n" +
		"2025-08-18,alpha,100,90\n" +
		"2025-08-18,beta,100,95\n"
	agg, _, m := newTestAggregator(t, csv)
	anchor := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	summaries, err := agg.DailySummaries(context.Background(), anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Actual != 90 {
		t.Fatalf("expected first actual to win: %+v", summaries)
	}
	if m.divergence != 1 {
		t.Fatalf("expected divergence counted once, got %d", m.divergence)
	}
}
