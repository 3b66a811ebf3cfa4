package usecase

import "strings"

// Schema maps the logical record fields to source column headers. The
// near-duplicate source revisions disagree on header names, so each source
// selects a profile instead of hardcoding one set.
type Schema struct {
	Timestamp  string
	Forecaster string
	Forecasted string
	Actual     string
	Error      string
}

// Named schema profiles observed across source revisions.
var schemaProfiles = map[string]Schema{
	"teamcast": {
		Timestamp:  "Date",
		Forecaster: "Pseudonym",
		Forecasted: "Forecasted value",
		Actual:     "Actual value",
		Error:      "Absolute Error",
	},
	"stream": {
		Timestamp:  "Forecast date",
		Forecaster: "Stream",
		Forecasted: "Forecasted value",
		Actual:     "Actual value",
		Error:      "Absolute Error",
	},
}

// columnAliases drive header detection in "auto" mode: every alias any
// known revision has used for a logical field.
var columnAliases = map[string][]string{
	"timestamp":  {"Date", "Forecast date", "Timestamp"},
	"forecaster": {"Pseudonym", "Stream", "Forecaster", "Name"},
	"forecasted": {"Forecasted value", "Forecast", "Forecasted"},
	"actual":     {"Actual value", "Actual"},
	"error":      {"Absolute Error", "Absolute error", "Abs Error"},
}

// columnIndex holds resolved header positions. -1 means the column is
// absent from this source.
type columnIndex struct {
	timestamp  int
	forecaster int
	forecasted int
	actual     int
	errCol     int
}

// resolveColumns maps a header row to column positions for the given
// profile name ("auto" matches against the alias table). Matching is
// case-insensitive and ignores surrounding whitespace.
func resolveColumns(header []string, profile string) columnIndex {
	idx := columnIndex{timestamp: -1, forecaster: -1, forecasted: -1, actual: -1, errCol: -1}

	find := func(names ...string) int {
		for i, h := range header {
			h = strings.TrimSpace(h)
			for _, name := range names {
				if strings.EqualFold(h, name) {
					return i
				}
			}
		}
		return -1
	}

	if s, ok := schemaProfiles[profile]; ok {
		idx.timestamp = find(s.Timestamp)
		idx.forecaster = find(s.Forecaster)
		idx.forecasted = find(s.Forecasted)
		idx.actual = find(s.Actual)
		idx.errCol = find(s.Error)
		return idx
	}

	idx.timestamp = find(columnAliases["timestamp"]...)
	idx.forecaster = find(columnAliases["forecaster"]...)
	idx.forecasted = find(columnAliases["forecasted"]...)
	idx.actual = find(columnAliases["actual"]...)
	idx.errCol = find(columnAliases["error"]...)
	return idx
}

// usable reports whether enough columns resolved to treat the bytes as a
// forecast table at all.
func (c columnIndex) usable() bool {
	return c.timestamp >= 0 && c.forecaster >= 0 && c.forecasted >= 0
}
