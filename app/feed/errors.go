package feed

import (
	"fmt"
)

// FetchError reports a failed feed retrieval.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching feed %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a feed body that is not the expected JSON
// envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedItemError reports an item whose fields block the
// transform. One malformed item aborts the whole run; there is no
// per-item recovery.
type MalformedItemError struct {
	Title string
	Field string
	Err   error
}

func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("malformed item %q: field %s: %v", e.Title, e.Field, e.Err)
}

func (e *MalformedItemError) Unwrap() error {
	return e.Err
}
