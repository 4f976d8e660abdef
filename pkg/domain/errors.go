package domain

import "errors"

var (
	// ErrNoResult means the search page was fetched and parsed but contained
	// no qualifying media URL.
	ErrNoResult = errors.New("no search result")

	// ErrFetchFailed covers network errors, timeouts and non-success statuses.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrParseFailed means the page did not look like a results document at
	// all. Shown to users as a plain miss, logged distinctly.
	ErrParseFailed = errors.New("parse failed")
)
