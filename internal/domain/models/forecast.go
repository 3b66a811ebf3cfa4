package models

import "time"

// Synthetic ranking names for the ensemble aggregates.
const (
	MeanEnsembleName   = "Mean of ensemble"
	MedianEnsembleName = "Median of ensemble"
)

// ForecastRecord is one normalized row of the source table. Nil fields mean
// the source cell was absent or unparseable; a row is never dropped for a
// bad cell, it just stops contributing to aggregates that need that field.
type ForecastRecord struct {
	Timestamp     *time.Time `json:"timestamp,omitempty"`
	ForecastDate  *time.Time `json:"forecast_date,omitempty"` // day-truncated, always derived from Timestamp
	Forecaster    string     `json:"forecaster"`
	Forecasted    *float64   `json:"forecasted,omitempty"`
	Actual        *float64   `json:"actual,omitempty"`
	AbsoluteError *float64   `json:"absolute_error,omitempty"`
}

// FullyValid reports whether the record can contribute to error math.
func (r *ForecastRecord) FullyValid() bool {
	return r.ForecastDate != nil && r.Forecasted != nil && r.Actual != nil
}

// DailyEnsembleSummary holds cross-forecaster aggregates for one day.
type DailyEnsembleSummary struct {
	Day            time.Time `json:"day"`
	MeanForecast   float64   `json:"mean_forecast"`
	MedianForecast float64   `json:"median_forecast"`
	Actual         float64   `json:"actual"`
	MeanError      float64   `json:"mean_error"`
	MedianError    float64   `json:"median_error"`
}

// DistributionPoint is one Table A row: a forecast value plotted on its day.
type DistributionPoint struct {
	Day        time.Time `json:"day"`
	Forecaster string    `json:"forecaster"`
	Forecasted float64   `json:"forecasted"`
}

// RankingRow is one Table B row. Name is either a forecaster pseudonym or
// one of the two synthetic ensemble labels.
type RankingRow struct {
	Name         string  `json:"name"`
	AverageError float64 `json:"average_error"`
}
