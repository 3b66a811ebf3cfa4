package models

// Requests for forecast HTTP endpoints. Defined in domain for consistency and reuse.

type DistributionRequest struct {
	Anchor string `query:"anchor" json:"anchor" validate:"omitempty,datetime=2006-01-02"`
}

type RankingRequest struct {
	Anchor string `query:"anchor" json:"anchor" validate:"omitempty,datetime=2006-01-02"`
}

type SummaryRequest struct {
	Anchor string `query:"anchor" json:"anchor" validate:"omitempty,datetime=2006-01-02"`
}

// DistributionResponse carries Table A. NoData distinguishes an empty
// window from a window with zero-valued data.
type DistributionResponse struct {
	Rows   []DistributionPoint `json:"rows"`
	NoData bool                `json:"no_data"`
}

// RankingResponse carries Table B, ascending by average error.
type RankingResponse struct {
	Rows   []RankingRow `json:"rows"`
	NoData bool         `json:"no_data"`
}

// SummaryResponse carries the per-day ensemble aggregates.
type SummaryResponse struct {
	Rows   []DailyEnsembleSummary `json:"rows"`
	NoData bool                   `json:"no_data"`
}
