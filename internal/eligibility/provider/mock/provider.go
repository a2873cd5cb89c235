// Package mock simulates an upstream payer eligibility API. Responses are
// deterministic functions of the member ID and insurer, so repeated demos and
// tests see identical coverage for the same inputs, while latency is drawn
// randomly per call to mimic network jitter.
package mock

import (
	"context"
	"math/rand/v2"
	"time"

	"carelink/internal/eligibility/models"
	"carelink/pkg/requestcontext"
)

// Provider is the mock insurance verification provider.
type Provider struct {
	minDelay time.Duration
	maxDelay time.Duration
}

// New constructs the mock provider with the configured latency bounds.
func New(minDelay, maxDelay time.Duration) *Provider {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &Provider{minDelay: minDelay, maxDelay: maxDelay}
}

// CheckEligibility simulates one upstream verification round trip: it sleeps
// for a random bounded delay, then derives the outcome and any coverage and
// subscriber data from the input identifiers.
func (p *Provider) CheckEligibility(ctx context.Context, input models.CheckInput) (*models.Result, error) {
	delay, err := p.simulateDelay(ctx)
	if err != nil {
		return nil, err
	}
	responseTimeMs := int(delay / time.Millisecond)

	seed := deriveSeed(input.MemberID, input.InsuranceCompany)
	today := requestcontext.Now(ctx)

	switch o := classify(seed); o {
	case outcomeNotFound:
		return &models.Result{
			Status:         models.ResultStatusNotFound,
			ErrorMessage:   errorMessage(o, seed),
			ResponseTimeMs: responseTimeMs,
		}, nil

	case outcomeUnavailable:
		return &models.Result{
			Status:         models.ResultStatusError,
			ErrorMessage:   errorMessage(o, seed),
			ResponseTimeMs: responseTimeMs,
		}, nil

	case outcomeInactive:
		coverage := buildCoverage(seed, today)
		// Policy lapsed 1-7 months ago.
		terminated := today.AddDate(0, 0, -int(seed%180+30))
		coverage.TerminationDate = models.DateOf(terminated).String()
		return &models.Result{
			Status:         models.ResultStatusInactive,
			Coverage:       coverage,
			Subscriber:     buildSubscriber(seed, input.MemberID, input.PatientFirstName, input.PatientLastName),
			ResponseTimeMs: responseTimeMs,
		}, nil

	default:
		return &models.Result{
			Status:         models.ResultStatusActive,
			Coverage:       buildCoverage(seed, today),
			Subscriber:     buildSubscriber(seed, input.MemberID, input.PatientFirstName, input.PatientLastName),
			ResponseTimeMs: responseTimeMs,
		}, nil
	}
}

// SupportedInsurers returns the payer roster, in display order.
func (p *Provider) SupportedInsurers() []string {
	out := make([]string, len(insurers))
	copy(out, insurers)
	return out
}

// simulateDelay suspends the call for a uniform random duration within the
// configured bounds. The timer keeps the sleep non-blocking for the runtime
// and honors caller cancellation.
func (p *Provider) simulateDelay(ctx context.Context) (time.Duration, error) {
	delay := p.minDelay
	if span := p.maxDelay - p.minDelay; span > 0 {
		delay += time.Duration(rand.Int64N(int64(span) + 1))
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
		return delay, nil
	}
}
