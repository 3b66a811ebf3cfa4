package source

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"SpreadCast/internal/domain/models"
	drepo "SpreadCast/internal/domain/repository"
	xhttp "SpreadCast/pkg/http"
)

// Client implements a SourceFetcher for HTTP(S) URLs and local files.
type Client struct {
	http *xhttp.Client
}

// New creates a new source fetcher.
func New(fetchTimeout time.Duration) drepo.SourceFetcher {
	return &Client{
		http: xhttp.NewClient(xhttp.WithTimeout(fetchTimeout)),
	}
}

// Fetch returns the raw source bytes. Fetch failures of any kind surface as
// ErrSourceUnavailable so callers can treat them as retryable.
func (c *Client) Fetch(ctx context.Context, sourceID string) ([]byte, error) {
	if strings.HasPrefix(sourceID, "http://") || strings.HasPrefix(sourceID, "https://") {
		var body []byte
		err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodGet,
			URL:    sourceID,
			Headers: map[string]string{
				"Accept": "text/csv, text/plain",
			},
		}, &body)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch %s: %v", models.ErrSourceUnavailable, sourceID, err)
		}
		return body, nil
	}

	b, err := os.ReadFile(sourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", models.ErrSourceUnavailable, sourceID, err)
	}
	return b, nil
}
