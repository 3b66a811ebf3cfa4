package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"SpreadCast/internal/domain/models"
	"SpreadCast/pkg/util"
)

// Loader parses raw source bytes into normalized forecast records under a
// schema profile. Row-level malformations degrade cells to nil and never
// fail the load; only an unusable header fails it.
type Loader struct {
	profile string
}

// NewLoader creates a loader for the given schema profile ("auto",
// "teamcast" or "stream").
func NewLoader(profile string) *Loader {
	if profile == "" {
		profile = "auto"
	}
	return &Loader{profile: profile}
}

// Parse converts CSV bytes into records. Returns ErrSourceMalformed when
// the bytes carry no recognizable header.
func (l *Loader) Parse(data []byte) ([]models.ForecastRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: no header row: %v", models.ErrSourceMalformed, err)
	}

	cols := resolveColumns(header, l.profile)
	if !cols.usable() {
		return nil, fmt.Errorf("%w: expected columns not found in header %q", models.ErrSourceMalformed, header)
	}

	records := make([]models.ForecastRecord, 0, 128)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A single broken row degrades, it does not fail the load.
			continue
		}
		records = append(records, parseRow(row, cols))
	}

	return records, nil
}

func parseRow(row []string, cols columnIndex) models.ForecastRecord {
	rec := models.ForecastRecord{
		Forecaster: strings.TrimSpace(cell(row, cols.forecaster)),
	}

	if ts, ok := util.ParseTime(cell(row, cols.timestamp)); ok {
		day := util.Day(ts)
		rec.Timestamp = &ts
		rec.ForecastDate = &day
	}
	if v, ok := util.ParseFloat(cell(row, cols.forecasted)); ok {
		rec.Forecasted = &v
	}
	if v, ok := util.ParseFloat(cell(row, cols.actual)); ok {
		rec.Actual = &v
	}
	// An absent error column leaves AbsoluteError nil for the synthesizer;
	// a present valid value is kept as-is and never recomputed.
	if v, ok := util.ParseFloat(cell(row, cols.errCol)); ok {
		rec.AbsoluteError = &v
	}

	return rec
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
