// Package service orchestrates eligibility checks: cache lookup, provider
// verification on miss, conditional cache write-back, and unconditional
// history persistence.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"carelink/internal/eligibility/cache"
	eligibilitymetrics "carelink/internal/eligibility/metrics"
	"carelink/internal/eligibility/models"
	"carelink/internal/eligibility/provider"
	id "carelink/pkg/domain"
	dErrors "carelink/pkg/domain-errors"
	"carelink/pkg/platform/sentinel"
	"carelink/pkg/requestcontext"
)

// CheckStore persists and queries check history records.
type CheckStore interface {
	Insert(ctx context.Context, check *models.Check) (*models.Check, error)
	FindByID(ctx context.Context, orgID id.OrganizationID, checkID id.CheckID) (*models.Check, error)
	ListHistory(ctx context.Context, filter models.HistoryFilter) ([]*models.Check, int, error)
}

// Service coordinates the verification provider, the result cache, and the
// history store. The cache is optional: when absent the service runs in
// degraded mode and every check invokes the provider.
type Service struct {
	store    CheckStore
	provider provider.Provider
	cache    cache.ResultCache
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  *eligibilitymetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(metrics *eligibilitymetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}

// WithCache enables cache-aside behavior with the given TTL. Without this
// option the service runs in degraded (always-miss) mode.
func WithCache(c cache.ResultCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func New(store CheckStore, p provider.Provider, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("check store is required")
	}
	if p == nil {
		return nil, fmt.Errorf("verification provider is required")
	}

	svc := &Service{
		store:    store,
		provider: p,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.cache == nil {
		svc.logger.Warn("eligibility result cache not configured, running in degraded mode")
	}
	return svc, nil
}

// CheckEligibility runs one verification for the authenticated actor.
//
// Cache-aside flow: a cached payload short-circuits the provider entirely and
// reports a zero response time. On a miss the provider runs, verified
// (active/inactive) payloads are written back under the TTL, and failure
// outcomes are never cached so they get re-attempted on the next call. A
// history record is persisted for every invocation, hit or miss; only the
// history write can fail the call.
func (s *Service) CheckEligibility(ctx context.Context, input models.CheckInput) (*models.Check, error) {
	userID := requestcontext.UserID(ctx)
	orgID := requestcontext.OrganizationID(ctx)
	if userID.IsNil() || orgID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	key := cache.Key(input.InsuranceCompany, input.MemberID, input.PatientDOB)

	check := &models.Check{
		UserID:           userID,
		OrganizationID:   orgID,
		PatientFirstName: input.PatientFirstName,
		PatientLastName:  input.PatientLastName,
		PatientDOB:       input.PatientDOB,
		InsuranceCompany: input.InsuranceCompany,
		MemberID:         input.MemberID,
		GroupNumber:      input.GroupNumber,
	}

	if payload := s.cachedPayload(ctx, key); payload != nil {
		if s.metrics != nil {
			s.metrics.IncrementCacheHit()
		}
		check.Status = models.CheckStatusFor(payload.Status)
		check.ResponseData = payload
		check.ResponseTimeMs = 0
	} else {
		if s.metrics != nil {
			s.metrics.IncrementCacheMiss()
		}

		start := time.Now()
		result, err := s.provider.CheckEligibility(ctx, input)
		if s.metrics != nil {
			s.metrics.ObserveProviderCall(start)
		}
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "eligibility verification failed")
		}

		responseData := &models.ResponsePayload{
			Status:     result.Status,
			Coverage:   result.Coverage,
			Subscriber: result.Subscriber,
		}
		check.Status = models.CheckStatusFor(result.Status)
		check.ResponseData = responseData
		check.ErrorMessage = result.ErrorMessage
		check.ResponseTimeMs = result.ResponseTimeMs

		// Only verified coverage is worth pinning for the TTL window; error
		// and not-found outcomes must be re-attempted on the next call.
		if result.Status == models.ResultStatusActive || result.Status == models.ResultStatusInactive {
			s.writeCache(ctx, key, responseData)
		}
	}

	inserted, err := s.store.Insert(ctx, check)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record eligibility check")
	}

	if s.metrics != nil {
		s.metrics.IncrementChecks(string(inserted.ResultStatus()))
	}
	s.logger.InfoContext(ctx, "eligibility check completed",
		"request_id", requestcontext.RequestID(ctx),
		"check_id", inserted.ID,
		"organization_id", orgID,
		"insurance_company", input.InsuranceCompany,
		"status", inserted.ResultStatus(),
		"response_time_ms", inserted.ResponseTimeMs,
	)
	return inserted, nil
}

// GetHistory returns one page of the actor organization's check history plus
// the total match count.
func (s *Service) GetHistory(ctx context.Context, req models.HistoryRequest) ([]*models.Check, int, error) {
	orgID := requestcontext.OrganizationID(ctx)
	if orgID.IsNil() {
		return nil, 0, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	checks, total, err := s.store.ListHistory(ctx, models.HistoryFilter{
		OrganizationID: orgID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Page:           req.Page,
		Limit:          req.Limit,
	})
	if err != nil {
		return nil, 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query check history")
	}
	return checks, total, nil
}

// GetCheckByID returns one check scoped to the actor's organization. A check
// that does not exist and one owned by another organization are both reported
// as not found.
func (s *Service) GetCheckByID(ctx context.Context, checkID id.CheckID) (*models.Check, error) {
	orgID := requestcontext.OrganizationID(ctx)
	if orgID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	check, err := s.store.FindByID(ctx, orgID, checkID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "eligibility check not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load eligibility check")
	}
	return check, nil
}

// SupportedInsurers lists the insurer names the configured provider accepts.
func (s *Service) SupportedInsurers() []string {
	return s.provider.SupportedInsurers()
}

// cachedPayload looks up a prior verified payload. Cache failures degrade to
// a miss; they are logged, never surfaced to the caller.
func (s *Service) cachedPayload(ctx context.Context, key string) *models.ResponsePayload {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "eligibility cache lookup failed, treating as miss",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil
	}
	return payload
}

// writeCache stores a verified payload under the TTL. Failures are logged and
// swallowed; the check itself already succeeded.
func (s *Service) writeCache(ctx context.Context, key string, payload *models.ResponsePayload) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "eligibility cache write failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}
