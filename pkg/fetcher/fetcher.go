package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akira02/tg-jpg/pkg/domain"
)

// Google serves a scrapeable results page only to browsers it recognizes,
// so the fetcher announces itself as Mobile Safari.
const (
	userAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) " +
		"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Fetcher retrieves pages and media over HTTP. One request per call, no
// retries; a slow or dead endpoint is bounded by the client timeout.
type Fetcher struct {
	client *http.Client
	lang   string
}

func New(timeout time.Duration, lang string) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		lang:   lang,
	}
}

// Fetch performs a single GET and returns the response body. Transport
// errors, timeouts and non-success statuses all map to domain.ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	if f.lang != "" {
		req.Header.Set("Accept-Language", fmt.Sprintf("%s,en-US;q=0.8,en;q=0.7", f.lang))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailed, err)
	}

	return body, nil
}
