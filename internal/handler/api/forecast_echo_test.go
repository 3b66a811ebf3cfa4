package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"SpreadCast/internal/domain/models"
	"SpreadCast/internal/usecase"
	xlogger "SpreadCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubFetcher struct {
	data []byte
	err  error
}

func (f *stubFetcher) Fetch(context.Context, string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func newTestServer(t *testing.T, fetcher *stubFetcher) *echo.Echo {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	agg := usecase.NewForecastAggregator(fetcher, nil, nil, usecase.NewLoader("auto"), "test-source", 14, 0)

	e := echo.New()
	NewForecastEchoHandler(l, agg).RegisterRoutes(e)
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRankingEndpoint(t *testing.T) {
	csv := "Date,Pseudonym,Forecasted value,Actual value\n" +
		"2025-08-18,alpha,100,90\n" +
		"2025-08-18,beta,80,90\n"
	e := newTestServer(t, &stubFetcher{data: []byte(csv)})

	rec := doGet(e, "/api/ranking?anchor=2025-08-20")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected http status %d", rec.Code)
	}

	var envelope struct {
		Status int `json:"status"`
		Data   struct {
			Rows   []models.RankingRow `json:"rows"`
			NoData bool                `json:"no_data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusOK {
		t.Fatalf("unexpected envelope status %d", envelope.Status)
	}
	if envelope.Data.NoData {
		t.Fatalf("expected data, got no_data")
	}
	// 2 forecasters + 2 ensemble labels
	if len(envelope.Data.Rows) != 4 {
		t.Fatalf("expected 4 ranking rows, got %d", len(envelope.Data.Rows))
	}
	for i := 1; i < len(envelope.Data.Rows); i++ {
		if envelope.Data.Rows[i-1].AverageError > envelope.Data.Rows[i].AverageError {
			t.Fatalf("ranking rows not ascending")
		}
	}
}

func TestRankingEndpointNoData(t *testing.T) {
	csv := "Date,Pseudonym,Forecasted value,Actual value\n" +
		"2025-08-18,alpha,100,90\n"
	e := newTestServer(t, &stubFetcher{data: []byte(csv)})

	// Anchor far away from the data: empty window degrades, it does not error.
	rec := doGet(e, "/api/ranking?anchor=2026-06-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected http status %d", rec.Code)
	}

	var envelope struct {
		Data struct {
			Rows   []models.RankingRow `json:"rows"`
			NoData bool                `json:"no_data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Data.NoData {
		t.Fatalf("expected no_data signal")
	}
	if len(envelope.Data.Rows) != 0 {
		t.Fatalf("expected empty rows, got %d", len(envelope.Data.Rows))
	}
}

func TestDistributionEndpoint(t *testing.T) {
	csv := "Date,Pseudonym,Forecasted value,Actual value\n" +
		"2025-08-18,alpha,100,90\n" +
		"2025-08-18,beta,80,\n"
	e := newTestServer(t, &stubFetcher{data: []byte(csv)})

	rec := doGet(e, "/api/distribution?anchor=2025-08-20")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected http status %d", rec.Code)
	}

	var envelope struct {
		Data struct {
			Rows []models.DistributionPoint `json:"rows"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The row without an actual still shows up in the distribution.
	if len(envelope.Data.Rows) != 2 {
		t.Fatalf("expected 2 distribution rows, got %d", len(envelope.Data.Rows))
	}
}

func TestAnchorValidation(t *testing.T) {
	e := newTestServer(t, &stubFetcher{data: []byte("Date,Pseudonym,Forecasted value,Actual value\n")})

	rec := doGet(e, "/api/distribution?anchor=20-08-2025")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected http status %d", rec.Code)
	}

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 envelope for bad anchor, got %d", envelope.Status)
	}
}

func TestSourceUnavailableEnvelope(t *testing.T) {
	e := newTestServer(t, &stubFetcher{err: fmt.Errorf("%w: dial tcp", models.ErrSourceUnavailable)})

	rec := doGet(e, "/api/summary?anchor=2025-08-20")
	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 envelope, got %d", envelope.Status)
	}
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t, &stubFetcher{})
	rec := doGet(e, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected http status %d", rec.Code)
	}
}
