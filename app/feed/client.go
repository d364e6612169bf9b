package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client retrieves and decodes the update feed.
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	timeout    time.Duration
}

func NewClient(url, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		url:        url,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Fetch performs one GET against the feed URL and decodes the result.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}

	return Decode(data)
}

// Decode unmarshals a feed document and resolves the per-item dates.
func Decode(data []byte) ([]Item, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ParseError{Err: err}
	}

	if envelope.Value == nil {
		return nil, &ParseError{Err: fmt.Errorf("missing value field")}
	}

	items := make([]Item, 0, len(envelope.Value))
	for _, item := range envelope.Value {
		publishedAt, err := parseDate(item.RawPublished)
		if err != nil {
			return nil, &MalformedItemError{Title: item.Title, Field: "Article_x0020_Date", Err: err}
		}

		expiresAt, err := parseDate(item.RawExpires)
		if err != nil {
			return nil, &MalformedItemError{Title: item.Title, Field: "Expires", Err: err}
		}

		item.PublishedAt = publishedAt
		item.ExpiresAt = expiresAt
		items = append(items, item)
	}

	return items, nil
}

// parseDate accepts the date renderings SharePoint list exports use.
func parseDate(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", value)
}
