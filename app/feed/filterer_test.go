package feed

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsEligible_ExpiredYesterday(t *testing.T) {
	now := date(2024, 3, 9)
	expires := date(2024, 3, 8)

	if IsEligible(date(2024, 3, 1), expires, now) {
		t.Errorf("Item expiring yesterday should not be eligible")
	}
}

func TestIsEligible_ExpiresToday(t *testing.T) {
	now := date(2024, 3, 9)
	expires := date(2024, 3, 9)

	if !IsEligible(date(2024, 3, 1), expires, now) {
		t.Errorf("Item expiring today should still be eligible")
	}
}

func TestIsEligible_ExpiresTomorrow(t *testing.T) {
	now := date(2024, 3, 9)
	expires := date(2024, 3, 10)

	if !IsEligible(date(2024, 3, 1), expires, now) {
		t.Errorf("Item expiring tomorrow should be eligible")
	}
}

func TestIsEligible_TimeOfDayIgnored(t *testing.T) {
	// Expiration earlier in the day than "now" still counts as today.
	now := time.Date(2024, 3, 9, 23, 45, 0, 0, time.UTC)
	expires := time.Date(2024, 3, 9, 0, 30, 0, 0, time.UTC)

	if !IsEligible(date(2024, 3, 1), expires, now) {
		t.Errorf("Expiration today should be eligible regardless of time of day")
	}
}

func TestFilterer_Run_PreservesOrder(t *testing.T) {
	filterer := NewFilterer()
	now := date(2024, 3, 9)

	items := []Item{
		{Title: "First", ExpiresAt: date(2024, 3, 20)},
		{Title: "Expired", ExpiresAt: date(2024, 3, 1)},
		{Title: "Second", ExpiresAt: date(2024, 3, 9)},
	}

	eligible := filterer.Run(items, now)

	if len(eligible) != 2 {
		t.Fatalf("Expected 2 eligible items, got %d", len(eligible))
	}
	if eligible[0].Title != "First" {
		t.Errorf("Expected first eligible item to be 'First', got %q", eligible[0].Title)
	}
	if eligible[1].Title != "Second" {
		t.Errorf("Expected second eligible item to be 'Second', got %q", eligible[1].Title)
	}
}

func TestFilterer_Run_AllExpired(t *testing.T) {
	filterer := NewFilterer()
	now := date(2024, 6, 1)

	items := []Item{
		{Title: "Old", ExpiresAt: date(2024, 5, 31)},
	}

	eligible := filterer.Run(items, now)

	if len(eligible) != 0 {
		t.Errorf("Expected no eligible items, got %d", len(eligible))
	}
}
