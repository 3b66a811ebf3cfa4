package models

import "errors"

var (
	// ErrSourceUnavailable means the source could not be fetched. Retryable.
	ErrSourceUnavailable = errors.New("forecast source unavailable")

	// ErrSourceMalformed means the source bytes are not tabular data at all.
	ErrSourceMalformed = errors.New("forecast source malformed")

	// ErrEmptyWindow means no records fall inside the analysis window.
	ErrEmptyWindow = errors.New("no records in window")

	// ErrInsufficientRankingData means no rows survived error filtering.
	ErrInsufficientRankingData = errors.New("insufficient data for ranking")
)
