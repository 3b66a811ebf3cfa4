package util

import (
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeBareDate(t *testing.T) {
	got, ok := ParseTime("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2024 || got.Month() != time.October || got.Day() != 10 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeSpaceSeparated(t *testing.T) {
	got, ok := ParseTime("2024-10-10 08:30:00")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Hour() != 8 || got.Minute() != 30 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeGarbage(t *testing.T) {
	if _, ok := ParseTime("not-a-date"); ok {
		t.Fatalf("expected failure")
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestDayIdempotent(t *testing.T) {
	ts := time.Date(2024, 10, 10, 23, 59, 59, 0, time.UTC)
	d := Day(ts)
	if !d.Equal(time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day %v", d)
	}
	if !Day(d).Equal(d) {
		t.Fatalf("day truncation not idempotent")
	}
}

func TestParseFloat(t *testing.T) {
	if v, ok := ParseFloat(" 123.5 "); !ok || v != 123.5 {
		t.Fatalf("unexpected %v %v", v, ok)
	}
	if _, ok := ParseFloat("n/a"); ok {
		t.Fatalf("expected failure")
	}
	if _, ok := ParseFloat(""); ok {
		t.Fatalf("expected failure")
	}
}
