package models

import (
	"strings"

	dErrors "carelink/pkg/domain-errors"
)

// Pagination bounds enforced at the HTTP boundary. History queries never see
// a limit above MaxPageLimit.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// CheckEligibilityRequest is the request body for POST /eligibility/check.
type CheckEligibilityRequest struct {
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	PatientDOB       Date   `json:"patient_dob"`
	InsuranceCompany string `json:"insurance_company"`
	MemberID         string `json:"member_id"`
	GroupNumber      string `json:"group_number,omitempty"`
}

func (r *CheckEligibilityRequest) Normalize() {
	if r == nil {
		return
	}
	r.PatientFirstName = strings.TrimSpace(r.PatientFirstName)
	r.PatientLastName = strings.TrimSpace(r.PatientLastName)
	r.InsuranceCompany = strings.TrimSpace(r.InsuranceCompany)
	r.MemberID = strings.TrimSpace(r.MemberID)
	r.GroupNumber = strings.TrimSpace(r.GroupNumber)
}

// Follows validation order: Size -> Required -> Syntax.
func (r *CheckEligibilityRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if len(r.PatientFirstName) > 100 {
		return dErrors.New(dErrors.CodeBadRequest, "patient_first_name must be 100 characters or less")
	}
	if len(r.PatientLastName) > 100 {
		return dErrors.New(dErrors.CodeBadRequest, "patient_last_name must be 100 characters or less")
	}
	if len(r.InsuranceCompany) > 255 {
		return dErrors.New(dErrors.CodeBadRequest, "insurance_company must be 255 characters or less")
	}
	if len(r.MemberID) > 50 {
		return dErrors.New(dErrors.CodeBadRequest, "member_id must be 50 characters or less")
	}
	if len(r.GroupNumber) > 50 {
		return dErrors.New(dErrors.CodeBadRequest, "group_number must be 50 characters or less")
	}

	if r.PatientFirstName == "" {
		return dErrors.New(dErrors.CodeBadRequest, "patient_first_name is required")
	}
	if r.PatientLastName == "" {
		return dErrors.New(dErrors.CodeBadRequest, "patient_last_name is required")
	}
	if r.PatientDOB.IsZero() {
		return dErrors.New(dErrors.CodeBadRequest, "patient_dob is required")
	}
	if r.InsuranceCompany == "" {
		return dErrors.New(dErrors.CodeBadRequest, "insurance_company is required")
	}
	if r.MemberID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "member_id is required")
	}

	return nil
}

// Input converts the validated request into the service-layer input.
func (r *CheckEligibilityRequest) Input() CheckInput {
	return CheckInput{
		PatientFirstName: r.PatientFirstName,
		PatientLastName:  r.PatientLastName,
		PatientDOB:       r.PatientDOB,
		InsuranceCompany: r.InsuranceCompany,
		MemberID:         r.MemberID,
		GroupNumber:      r.GroupNumber,
	}
}

// HistoryRequest carries parsed query parameters for GET /eligibility/history.
type HistoryRequest struct {
	Page      int
	Limit     int
	StartDate *Date
	EndDate   *Date
}

func (r *HistoryRequest) Validate() error {
	if r.Page < 1 {
		return dErrors.New(dErrors.CodeBadRequest, "page must be 1 or greater")
	}
	if r.Limit < 1 {
		return dErrors.New(dErrors.CodeBadRequest, "limit must be 1 or greater")
	}
	if r.Limit > MaxPageLimit {
		return dErrors.New(dErrors.CodeBadRequest, "limit must be 100 or less")
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(r.StartDate.Time) {
		return dErrors.New(dErrors.CodeBadRequest, "end_date must not be before start_date")
	}
	return nil
}
