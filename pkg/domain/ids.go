// Package domain defines typed identifiers shared across verticals. Distinct
// UUID wrapper types keep user, organization, and check IDs from being mixed
// up at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "carelink/pkg/domain-errors"
)

type (
	// UserID identifies the authenticated principal performing a check.
	UserID uuid.UUID
	// OrganizationID identifies the tenant that owns persisted checks.
	OrganizationID uuid.UUID
	// CheckID identifies a single persisted eligibility check.
	CheckID uuid.UUID
)

func (id UserID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id OrganizationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id CheckID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }

func (id UserID) String() string         { return uuid.UUID(id).String() }
func (id OrganizationID) String() string { return uuid.UUID(id).String() }
func (id CheckID) String() string        { return uuid.UUID(id).String() }

// ParseUserID parses and validates a user ID at a trust boundary.
// IDs must be valid, non-empty, non-nil UUIDs.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user_id")
	return UserID(u), err
}

// ParseOrganizationID parses and validates an organization ID at a trust boundary.
func ParseOrganizationID(s string) (OrganizationID, error) {
	u, err := parseUUID(s, "organization_id")
	return OrganizationID(u), err
}

// ParseCheckID parses and validates a check ID at a trust boundary.
func ParseCheckID(s string) (CheckID, error) {
	u, err := parseUUID(s, "check_id")
	return CheckID(u), err
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must not be the nil UUID")
	}
	return u, nil
}
