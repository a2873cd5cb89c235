package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"carelink/internal/eligibility/models"
	id "carelink/pkg/domain"
	"carelink/pkg/platform/sentinel"
)

// InMemoryCheckStore keeps check history in memory. Used by unit tests and
// single-node development runs; the PostgreSQL store is the production pair.
type InMemoryCheckStore struct {
	mu     sync.RWMutex
	checks []*models.Check
}

func NewInMemory() *InMemoryCheckStore {
	return &InMemoryCheckStore{}
}

// Insert assigns identity and creation time if absent and appends the record.
func (s *InMemoryCheckStore) Insert(_ context.Context, check *models.Check) (*models.Check, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *check
	if stored.ID.IsNil() {
		stored.ID = id.CheckID(uuid.New())
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.checks = append(s.checks, &stored)

	result := stored
	return &result, nil
}

// FindByID returns the check only when it belongs to the organization.
// Missing and foreign-organization records are indistinguishable by design.
func (s *InMemoryCheckStore) FindByID(_ context.Context, orgID id.OrganizationID, checkID id.CheckID) (*models.Check, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, check := range s.checks {
		if check.ID == checkID && check.OrganizationID == orgID {
			result := *check
			return &result, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// ListHistory returns one page of the organization's checks, most recent
// first, plus the total match count before pagination.
func (s *InMemoryCheckStore) ListHistory(_ context.Context, filter models.HistoryFilter) ([]*models.Check, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Check
	for _, check := range s.checks {
		if check.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.StartDate != nil && check.CreatedAt.Before(filter.StartDate.Time) {
			continue
		}
		if filter.EndDate != nil && check.CreatedAt.After(endOfDay(*filter.EndDate)) {
			continue
		}
		matched = append(matched, check)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	offset := filter.Offset()
	if offset >= total {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > total {
		end = total
	}

	page := make([]*models.Check, 0, end-offset)
	for _, check := range matched[offset:end] {
		result := *check
		page = append(page, &result)
	}
	return page, total, nil
}

// endOfDay widens an inclusive end date to cover the whole calendar day.
func endOfDay(d models.Date) time.Time {
	return d.Time.Add(24*time.Hour - time.Nanosecond)
}
