package usecase

import (
	"errors"
	"testing"

	"SpreadCast/internal/domain/models"
)

func TestParseTeamcastSchema(t *testing.T) {
	csv := "Date,Pseudonym,Forecasted value,Actual value,Absolute Error\n" +
		"2025-08-18 10:00:00,alpha,120.5,100.0,20.5\n" +
		"2025-08-18 11:00:00,beta,90.0,100.0,\n"

	records, err := NewLoader("teamcast").Parse([]byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r := records[0]
	if r.Forecaster != "alpha" {
		t.Fatalf("unexpected forecaster %q", r.Forecaster)
	}
	if r.ForecastDate == nil || r.ForecastDate.Format("2006-01-02") != "2025-08-18" {
		t.Fatalf("unexpected forecast date %v", r.ForecastDate)
	}
	if r.Forecasted == nil || *r.Forecasted != 120.5 {
		t.Fatalf("unexpected forecasted %v", r.Forecasted)
	}
	if r.AbsoluteError == nil || *r.AbsoluteError != 20.5 {
		t.Fatalf("expected supplied error kept, got %v", r.AbsoluteError)
	}
	if records[1].AbsoluteError != nil {
		t.Fatalf("expected empty error cell to stay missing")
	}
}

func TestParseStreamSchema(t *testing.T) {
	csv := "Forecast date,Stream,Forecasted value,Actual value\n" +
		"2025-08-18,gamma,75.0,80.0\n"

	records, err := NewLoader("stream").Parse([]byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Forecaster != "gamma" {
		t.Fatalf("unexpected forecaster %q", records[0].Forecaster)
	}
	// No error column in this revision: synthesizer's job, not the loader's.
	if records[0].AbsoluteError != nil {
		t.Fatalf("expected missing error without error column")
	}
}

func TestParseAutoDetectsEitherSchema(t *testing.T) {
	for _, csv := range []string{
		"Date,Pseudonym,Forecasted value,Actual value\n2025-08-18,alpha,1.0,2.0\n",
		"Forecast date,Stream,Forecasted value,Actual value\n2025-08-18,alpha,1.0,2.0\n",
	} {
		records, err := NewLoader("auto").Parse([]byte(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 || records[0].Forecaster != "alpha" {
			t.Fatalf("auto detection failed for %q", csv)
		}
	}
}

func TestParseLenientCells(t *testing.T) {
	csv := "Date,Pseudonym,Forecasted value,Actual value\n" +
		"not-a-date,alpha,oops,100.0\n"

	records, err := NewLoader("auto").Parse([]byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("malformed cells must not drop the row")
	}
	r := records[0]
	if r.Timestamp != nil || r.ForecastDate != nil {
		t.Fatalf("expected missing dates, got %v %v", r.Timestamp, r.ForecastDate)
	}
	if r.Forecasted != nil {
		t.Fatalf("expected missing forecast value")
	}
	if r.Actual == nil || *r.Actual != 100.0 {
		t.Fatalf("expected actual kept, got %v", r.Actual)
	}
}

func TestParseShortRow(t *testing.T) {
	csv := "Date,Pseudonym,Forecasted value,Actual value\n" +
		"2025-08-18,alpha\n"

	records, err := NewLoader("auto").Parse([]byte(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("short row must survive with missing fields")
	}
	if records[0].Forecasted != nil || records[0].Actual != nil {
		t.Fatalf("expected missing numeric fields on short row")
	}
}

func TestParseMalformedSource(t *testing.T) {
	_, err := NewLoader("auto").Parse([]byte("id,name\n1,foo\n"))
	if !errors.Is(err, models.ErrSourceMalformed) {
		t.Fatalf("expected ErrSourceMalformed, got %v", err)
	}

	_, err = NewLoader("auto").Parse([]byte(""))
	if !errors.Is(err, models.ErrSourceMalformed) {
		t.Fatalf("expected ErrSourceMalformed on empty bytes, got %v", err)
	}
}
