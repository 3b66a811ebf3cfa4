package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"SpreadCast/internal/domain/models"
)

func TestFetchLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("Date,Pseudonym\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := New(5 * time.Second)
	b, err := c.Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(b) != "Date,Pseudonym\n" {
		t.Fatalf("unexpected body %q", b)
	}
}

func TestFetchLocalFileMissing(t *testing.T) {
	c := New(5 * time.Second)
	_, err := c.Fetch(context.Background(), "/nonexistent/data.csv")
	if !errors.Is(err, models.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Date,Pseudonym\n2025-08-18,alpha\n"))
	}))
	defer srv.Close()

	c := New(5 * time.Second)
	b, err := c.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("empty body")
	}
}

func TestFetchHTTPServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(5 * time.Second)
	_, err := c.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, models.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
