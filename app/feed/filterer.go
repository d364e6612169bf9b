package feed

import (
	"time"
)

// Filterer decides which feed items are still publishable.
type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the items whose expiration date has not passed,
// preserving input order.
func (f *Filterer) Run(items []Item, now time.Time) []Item {
	eligible := make([]Item, 0, len(items))
	for _, item := range items {
		if IsEligible(item.PublishedAt, item.ExpiresAt, now) {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

// IsEligible reports whether an item should still be published as of
// now. All dates are compared at midnight; an item expiring today is
// still eligible.
func IsEligible(publishedAt, expiresAt, now time.Time) bool {
	return !midnight(expiresAt).Before(midnight(now))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
