package usecase

import (
	"time"

	"SpreadCast/internal/domain/models"
	"SpreadCast/pkg/util"
)

// FilterWindow keeps records whose ForecastDate lies in
// [anchor-days, anchor], inclusive on both ends, at day granularity.
// Records without a ForecastDate cannot be window-tested and are excluded.
// The anchor is always injected by the caller; nothing in the pipeline
// reads the wall clock.
func FilterWindow(records []models.ForecastRecord, anchor time.Time, days int) []models.ForecastRecord {
	end := util.Day(anchor)
	start := end.AddDate(0, 0, -days)

	out := make([]models.ForecastRecord, 0, len(records))
	for _, r := range records {
		if r.ForecastDate == nil {
			continue
		}
		d := *r.ForecastDate
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}
