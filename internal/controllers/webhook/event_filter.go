package webhook

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RedeliveryFilter remembers processed webhook event ids for a while, so
// events that LINE redelivers are acknowledged without being handled twice.
type RedeliveryFilter struct {
	cache *cache.Cache
}

// NewRedeliveryFilter creates a filter that remembers event ids for ttl.
func NewRedeliveryFilter(ttl time.Duration) *RedeliveryFilter {
	return &RedeliveryFilter{
		cache: cache.New(ttl, 2*ttl),
	}
}

// Seen reports whether eventID was marked and has not expired.
func (f *RedeliveryFilter) Seen(eventID string) bool {
	_, found := f.cache.Get(eventID)
	return found
}

// Mark records eventID as processed.
func (f *RedeliveryFilter) Mark(eventID string) {
	f.cache.SetDefault(eventID, struct{}{})
}
