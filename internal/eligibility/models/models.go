package models

import (
	"time"

	id "carelink/pkg/domain"
)

// ResultStatus is the verification outcome reported by a provider.
type ResultStatus string

const (
	ResultStatusActive   ResultStatus = "active"
	ResultStatusInactive ResultStatus = "inactive"
	ResultStatusNotFound ResultStatus = "not_found"
	ResultStatusError    ResultStatus = "error"
)

// IsValid checks if the result status is one of the supported enum values.
func (s ResultStatus) IsValid() bool {
	switch s {
	case ResultStatusActive, ResultStatusInactive, ResultStatusNotFound, ResultStatusError:
		return true
	}
	return false
}

// CheckStatus classifies a persisted check. It is coarser than ResultStatus:
// a check that ran and definitively determined "inactive" or "no such member"
// still succeeded as a check, so only provider-side failures persist as error.
type CheckStatus string

const (
	CheckStatusSuccess CheckStatus = "success"
	CheckStatusError   CheckStatus = "error"
)

// CheckStatusFor maps a verification outcome to its persisted classification.
func CheckStatusFor(status ResultStatus) CheckStatus {
	if status == ResultStatusError {
		return CheckStatusError
	}
	return CheckStatusSuccess
}

// Coverage holds plan details for a verified policy. Monetary fields are
// currency-formatted strings; downstream consumers render them literally and
// never re-parse amounts.
type Coverage struct {
	EffectiveDate        string `json:"effective_date"`
	TerminationDate      string `json:"termination_date,omitempty"`
	PlanName             string `json:"plan_name"`
	PlanType             string `json:"plan_type"`
	CopayPrimaryCare     string `json:"copay_primary_care"`
	CopaySpecialist      string `json:"copay_specialist"`
	CopayUrgentCare      string `json:"copay_urgent_care"`
	CopayEmergency       string `json:"copay_emergency"`
	DeductibleIndividual string `json:"deductible_individual"`
	DeductibleFamily     string `json:"deductible_family"`
	DeductibleMet        string `json:"deductible_met"`
	OutOfPocketMax       string `json:"out_of_pocket_max"`
	OutOfPocketMaxFamily string `json:"out_of_pocket_max_family"`
	OutOfPocketMet       string `json:"out_of_pocket_met"`
	Coinsurance          string `json:"coinsurance"`
}

// Subscriber identifies the policy holder and their relationship to the patient.
type Subscriber struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	MemberID     string `json:"member_id"`
}

// Result is the ephemeral outcome of one provider invocation. Exactly one of
// (Coverage+Subscriber) or ErrorMessage is populated, depending on Status.
type Result struct {
	Status         ResultStatus
	Coverage       *Coverage
	Subscriber     *Subscriber
	ErrorMessage   string
	ResponseTimeMs int
}

// ResponsePayload is the JSON-serializable portion of a result that gets
// cached and persisted alongside the check record.
type ResponsePayload struct {
	Status     ResultStatus `json:"status"`
	Coverage   *Coverage    `json:"coverage,omitempty"`
	Subscriber *Subscriber  `json:"subscriber,omitempty"`
}

// CheckInput carries the patient and insurance identifiers for one
// verification request.
type CheckInput struct {
	PatientFirstName string
	PatientLastName  string
	PatientDOB       Date
	InsuranceCompany string
	MemberID         string
	GroupNumber      string
}

// Check is the immutable history record of one eligibility check invocation,
// written once per orchestrator call whether the cache hit or missed.
type Check struct {
	ID             id.CheckID
	UserID         id.UserID
	OrganizationID id.OrganizationID

	PatientFirstName string
	PatientLastName  string
	PatientDOB       Date
	InsuranceCompany string
	MemberID         string
	GroupNumber      string

	Status         CheckStatus
	ResponseData   *ResponsePayload
	ErrorMessage   string
	ResponseTimeMs int
	CreatedAt      time.Time
}

// ResultStatus surfaces the fine-grained verification outcome recorded in the
// response payload, falling back to error when no payload was captured.
func (c *Check) ResultStatus() ResultStatus {
	if c.ResponseData != nil {
		return c.ResponseData.Status
	}
	return ResultStatusError
}

// HistoryFilter bounds a history query. Both dates are inclusive; zero values
// leave the corresponding bound open.
type HistoryFilter struct {
	OrganizationID id.OrganizationID
	StartDate      *Date
	EndDate        *Date
	Page           int
	Limit          int
}

// Offset computes the row offset for the requested page.
func (f HistoryFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
