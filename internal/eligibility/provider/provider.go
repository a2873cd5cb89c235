// Package provider defines the pluggable insurance verification contract.
// A real payer integration implements the same interface and gets selected by
// configuration, leaving the orchestration layer untouched.
package provider

import (
	"context"

	"carelink/internal/eligibility/models"
	"carelink/internal/eligibility/provider/mock"
	"carelink/internal/platform/config"
)

// Provider verifies insurance eligibility against an upstream source.
type Provider interface {
	// CheckEligibility returns a structured result for the given patient and
	// insurance identifiers. Simulated domain outcomes (inactive, not found,
	// upstream error) are carried in the result, not the error return.
	CheckEligibility(ctx context.Context, input models.CheckInput) (*models.Result, error)

	// SupportedInsurers lists the insurer names this provider recognizes.
	SupportedInsurers() []string
}

// New selects the configured provider implementation. The mock simulator is
// the only integration today; unknown names fall back to it so a
// misconfigured deployment still serves checks.
func New(cfg config.Eligibility) Provider {
	// TODO: dispatch on cfg.Provider once a second integration exists.
	return mock.New(cfg.MinDelay, cfg.MaxDelay)
}
