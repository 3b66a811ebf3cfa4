package usecase

import (
	"math"

	"SpreadCast/internal/domain/models"
)

// SynthesizeErrors fills missing AbsoluteError values as
// |forecasted - actual| where both inputs are present. Values already
// populated from the source are never overwritten, and records missing
// either input keep a nil error. Idempotent: a second pass is a no-op.
func SynthesizeErrors(records []models.ForecastRecord) []models.ForecastRecord {
	for i := range records {
		r := &records[i]
		if r.AbsoluteError != nil {
			continue
		}
		if r.Forecasted == nil || r.Actual == nil {
			continue
		}
		e := math.Abs(*r.Forecasted - *r.Actual)
		r.AbsoluteError = &e
	}
	return records
}
