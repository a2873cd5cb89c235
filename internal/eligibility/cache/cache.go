// Package cache stores verified eligibility payloads under a TTL so repeat
// checks for the same member short-circuit the upstream provider.
package cache

import (
	"context"
	"time"

	"carelink/internal/eligibility/models"
)

// ResultCache is the keyed TTL store used by the cache-aside orchestration.
// Get returns (nil, nil) on a miss; implementations must not treat absence as
// an error.
type ResultCache interface {
	Get(ctx context.Context, key string) (*models.ResponsePayload, error)
	Set(ctx context.Context, key string, payload *models.ResponsePayload, ttl time.Duration) error
}

// Key derives the composite cache key for one (insurer, member, date of
// birth) identity. The date is rendered in calendar form so the key is stable
// across time zones.
func Key(insuranceCompany, memberID string, dob models.Date) string {
	return "eligibility:" + insuranceCompany + ":" + memberID + ":" + dob.String()
}
