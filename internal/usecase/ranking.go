package usecase

import (
	"sort"

	"SpreadCast/internal/domain/models"
	"SpreadCast/internal/services/stats"
)

// ComposeRanking merges per-forecaster mean absolute error with the
// ensemble aggregates into one table, ascending by average error.
// Forecasters without a single usable error row are omitted, never emitted
// as zero rows. The two ensemble rows appear only when at least one daily
// summary exists. An empty combined table is a signal, not a silent success.
func ComposeRanking(records []models.ForecastRecord, summaries []models.DailyEnsembleSummary) ([]models.RankingRow, error) {
	perForecaster := make(map[string][]float64)
	order := make([]string, 0)

	for _, r := range records {
		if r.Forecaster == "" || r.AbsoluteError == nil {
			continue
		}
		if _, ok := perForecaster[r.Forecaster]; !ok {
			order = append(order, r.Forecaster)
		}
		perForecaster[r.Forecaster] = append(perForecaster[r.Forecaster], *r.AbsoluteError)
	}

	rows := make([]models.RankingRow, 0, len(order)+2)
	for _, name := range order {
		rows = append(rows, models.RankingRow{
			Name:         name,
			AverageError: stats.Mean(perForecaster[name]),
		})
	}

	if len(summaries) > 0 {
		meanErrs := make([]float64, 0, len(summaries))
		medianErrs := make([]float64, 0, len(summaries))
		for _, s := range summaries {
			meanErrs = append(meanErrs, s.MeanError)
			medianErrs = append(medianErrs, s.MedianError)
		}
		rows = append(rows,
			models.RankingRow{Name: models.MeanEnsembleName, AverageError: stats.Mean(meanErrs)},
			models.RankingRow{Name: models.MedianEnsembleName, AverageError: stats.Mean(medianErrs)},
		)
	}

	if len(rows) == 0 {
		return nil, models.ErrInsufficientRankingData
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageError < rows[j].AverageError
	})
	return rows, nil
}
