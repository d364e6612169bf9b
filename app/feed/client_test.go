package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testFeedBody = `{
  "value": [
    {
      "Title": "Spring Registration",
      "Article_x0020_Description": "Register now",
      "Article_x0020_Category": "Academics",
      "Author0": "Jane Doe",
      "Article_x0020_Thumbnail": null,
      "Article_x0020_Image": null,
      "Article_x0020_Image_x0020_alt_x0": null,
      "Article_x0020_Content": "<p>Details</p>",
      "Article_x0020_Date": "2024-03-09T00:00:00Z",
      "Expires": "2024-03-29T00:00:00Z"
    }
  ]
}`

func newTestClient(url string) *Client {
	return NewClient(url, "test-agent", 5*time.Second)
}

func TestClient_Fetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(testFeedBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	items, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if gotUserAgent != "test-agent" {
		t.Errorf("User-Agent: got %q, want %q", gotUserAgent, "test-agent")
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Title != "Spring Registration" {
		t.Errorf("Title: got %q", item.Title)
	}
	if item.Description == nil || *item.Description != "Register now" {
		t.Errorf("Description not decoded: %v", item.Description)
	}
	if item.Thumbnail != nil {
		t.Errorf("Null thumbnail should decode as absent")
	}
	if !item.PublishedAt.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PublishedAt: got %v", item.PublishedAt)
	}
	if !item.ExpiresAt.Equal(time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ExpiresAt: got %v", item.ExpiresAt)
	}
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Fetch(context.Background())
	if err == nil {
		t.Fatal("Expected error for HTTP 500")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %T: %v", err, err)
	}
	if fetchErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode: got %d, want %d", fetchErr.StatusCode, http.StatusInternalServerError)
	}
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	_, err := client.Fetch(context.Background())
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %T: %v", err, err)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte("not json"))
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %T: %v", err, err)
	}
}

func TestDecode_MissingValueField(t *testing.T) {
	_, err := Decode([]byte(`{"items": []}`))
	if err == nil {
		t.Fatal("Expected error for missing value field")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %T: %v", err, err)
	}
}

func TestDecode_EmptyValue(t *testing.T) {
	items, err := Decode([]byte(`{"value": []}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items, got %d", len(items))
	}
}

func TestDecode_UnparseableDate(t *testing.T) {
	body := `{"value": [{"Title": "Bad Date", "Article_x0020_Date": "soon", "Expires": "2024-03-29T00:00:00Z"}]}`

	_, err := Decode([]byte(body))
	if err == nil {
		t.Fatal("Expected error for unparseable date")
	}

	var malformed *MalformedItemError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedItemError, got %T: %v", err, err)
	}
	if malformed.Title != "Bad Date" {
		t.Errorf("Error title: got %q", malformed.Title)
	}
	if malformed.Field != "Article_x0020_Date" {
		t.Errorf("Error field: got %q", malformed.Field)
	}
}

func TestDecode_DateOnlyLayout(t *testing.T) {
	body := `{"value": [{"Title": "Date Only", "Article_x0020_Date": "2024-03-09", "Expires": "2024-03-29"}]}`

	items, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !items[0].PublishedAt.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PublishedAt: got %v", items[0].PublishedAt)
	}
}
