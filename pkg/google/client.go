package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/akira02/tg-jpg/pkg/domain"
	"github.com/akira02/tg-jpg/pkg/logger"
)

const endpoint = "https://www.google.com/search"

type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Client scrapes Google image search. Every call is an independent fetch,
// nothing is cached and nothing is retried.
type Client struct {
	fetcher PageFetcher
	lang    string
}

func NewClient(fetcher PageFetcher, lang string) *Client {
	return &Client{fetcher: fetcher, lang: lang}
}

// Search queries image search for baseName and returns candidate media URLs
// in document order. kind biases results toward stills or gifs. An empty
// result set is domain.ErrNoResult; an unrecognizable page is
// domain.ErrParseFailed, which callers present as a plain miss.
func (c *Client) Search(ctx context.Context, baseName string, kind domain.MediaKind) ([]string, error) {
	q := url.Values{}
	q.Set("q", baseName)
	q.Set("tbm", "isch")
	if kind == domain.KindAnimation {
		q.Set("tbs", "ift:gif")
	} else {
		q.Set("tbs", "ift:jpg")
	}
	if c.lang != "" {
		q.Set("hl", c.lang)
	}

	slog.InfoContext(ctx, "searching google images", "query", baseName, "kind", kind.String())

	page, err := c.fetcher.Fetch(ctx, endpoint+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching results page: %w", err)
	}

	urls, err := extractImageURLs(page)
	if err != nil {
		// Scraping drift: Google changed the page and none of the
		// extraction strategies recognize it anymore.
		slog.ErrorContext(ctx, "results page did not match any extraction strategy",
			"query", baseName, "pageBytes", len(page), logger.Err(err))
		return nil, err
	}
	if len(urls) == 0 {
		return nil, domain.ErrNoResult
	}

	slog.InfoContext(ctx, "extracted image urls", "count", len(urls))
	return urls, nil
}
