package models

import (
	"time"
)

// CheckResponse is the API view of a single eligibility check.
type CheckResponse struct {
	ID             string       `json:"id"`
	Status         ResultStatus `json:"status"`
	Coverage       *Coverage    `json:"coverage,omitempty"`
	Subscriber     *Subscriber  `json:"subscriber,omitempty"`
	ErrorMessage   string       `json:"error_message,omitempty"`
	ResponseTimeMs int          `json:"response_time_ms"`
	CreatedAt      time.Time    `json:"created_at"`
}

// CheckResponseFrom projects a persisted check into its API view.
func CheckResponseFrom(check *Check) CheckResponse {
	resp := CheckResponse{
		ID:             check.ID.String(),
		Status:         check.ResultStatus(),
		ErrorMessage:   check.ErrorMessage,
		ResponseTimeMs: check.ResponseTimeMs,
		CreatedAt:      check.CreatedAt,
	}
	if check.ResponseData != nil {
		resp.Coverage = check.ResponseData.Coverage
		resp.Subscriber = check.ResponseData.Subscriber
	}
	return resp
}

// HistoryItem echoes the full check input alongside the outcome so the
// history view needs no further lookups.
type HistoryItem struct {
	ID               string           `json:"id"`
	PatientFirstName string           `json:"patient_first_name"`
	PatientLastName  string           `json:"patient_last_name"`
	PatientDOB       Date             `json:"patient_dob"`
	InsuranceCompany string           `json:"insurance_company"`
	MemberID         string           `json:"member_id"`
	GroupNumber      string           `json:"group_number,omitempty"`
	Status           ResultStatus     `json:"status"`
	ResponseData     *ResponsePayload `json:"response_data,omitempty"`
	ErrorMessage     string           `json:"error_message,omitempty"`
	ResponseTimeMs   int              `json:"response_time_ms"`
	CreatedAt        time.Time        `json:"created_at"`
}

// HistoryItemFrom projects a persisted check into a history row.
func HistoryItemFrom(check *Check) HistoryItem {
	return HistoryItem{
		ID:               check.ID.String(),
		PatientFirstName: check.PatientFirstName,
		PatientLastName:  check.PatientLastName,
		PatientDOB:       check.PatientDOB,
		InsuranceCompany: check.InsuranceCompany,
		MemberID:         check.MemberID,
		GroupNumber:      check.GroupNumber,
		Status:           check.ResultStatus(),
		ResponseData:     check.ResponseData,
		ErrorMessage:     check.ErrorMessage,
		ResponseTimeMs:   check.ResponseTimeMs,
		CreatedAt:        check.CreatedAt,
	}
}

// Pagination is the standard paging envelope.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count: ceil(total/limit), 0 when empty.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if total > 0 && limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// HistoryResponse is the paginated history envelope.
type HistoryResponse struct {
	Data       []HistoryItem `json:"data"`
	Pagination Pagination    `json:"pagination"`
}
