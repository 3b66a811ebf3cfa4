package usecase

import (
	"math"
	"sort"
	"time"

	"SpreadCast/internal/domain/models"
	drepo "SpreadCast/internal/domain/repository"
	"SpreadCast/internal/services/stats"
)

// EnsembleAggregator derives per-day cross-forecaster aggregates.
type EnsembleAggregator struct {
	metrics drepo.Metrics
	source  string
}

// NewEnsembleAggregator creates an aggregator reporting against the given
// source label.
func NewEnsembleAggregator(metrics drepo.Metrics, source string) *EnsembleAggregator {
	return &EnsembleAggregator{metrics: metrics, source: source}
}

// Summarize groups fully valid records by forecast day and computes the
// ensemble mean/median forecast and their errors against the day's actual.
// The actual is taken from the first record encountered in input order;
// rows disagreeing on the actual are accepted silently but counted.
// Days with no fully valid record are omitted.
func (a *EnsembleAggregator) Summarize(records []models.ForecastRecord) []models.DailyEnsembleSummary {
	type group struct {
		forecasts []float64
		actual    float64
		divergent bool
	}

	groups := make(map[time.Time]*group)
	order := make([]time.Time, 0)

	for _, r := range records {
		if !r.FullyValid() {
			continue
		}
		day := *r.ForecastDate
		g, ok := groups[day]
		if !ok {
			g = &group{actual: *r.Actual}
			groups[day] = g
			order = append(order, day)
		}
		g.forecasts = append(g.forecasts, *r.Forecasted)
		if *r.Actual != g.actual {
			g.divergent = true
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	summaries := make([]models.DailyEnsembleSummary, 0, len(order))
	for _, day := range order {
		g := groups[day]
		if g.divergent && a.metrics != nil {
			a.metrics.RecordActualDivergence(a.source)
		}
		meanFc := stats.Mean(g.forecasts)
		medianFc := stats.Median(g.forecasts)
		summaries = append(summaries, models.DailyEnsembleSummary{
			Day:            day,
			MeanForecast:   meanFc,
			MedianForecast: medianFc,
			Actual:         g.actual,
			MeanError:      math.Abs(meanFc - g.actual),
			MedianError:    math.Abs(medianFc - g.actual),
		})
	}
	return summaries
}
