package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	dErrors "carelink/pkg/domain-errors"
)

func validCheckRequest() CheckEligibilityRequest {
	return CheckEligibilityRequest{
		PatientFirstName: "Jane",
		PatientLastName:  "Doe",
		PatientDOB:       NewDate(1990, time.January, 1),
		InsuranceCompany: "Acme Health",
		MemberID:         "M123456",
	}
}

func TestCheckEligibilityRequest_Normalize(t *testing.T) {
	req := CheckEligibilityRequest{
		PatientFirstName: "  Jane ",
		PatientLastName:  "Doe\t",
		InsuranceCompany: " Acme Health ",
		MemberID:         " M123456 ",
		GroupNumber:      " GRP1 ",
	}
	req.Normalize()

	assert.Equal(t, "Jane", req.PatientFirstName)
	assert.Equal(t, "Doe", req.PatientLastName)
	assert.Equal(t, "Acme Health", req.InsuranceCompany)
	assert.Equal(t, "M123456", req.MemberID)
	assert.Equal(t, "GRP1", req.GroupNumber)
}

func TestCheckEligibilityRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCheckRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("group number is optional", func(t *testing.T) {
		req := validCheckRequest()
		req.GroupNumber = ""
		assert.NoError(t, req.Validate())
	})

	mutations := map[string]struct {
		mutate  func(*CheckEligibilityRequest)
		message string
	}{
		"missing first name": {
			func(r *CheckEligibilityRequest) { r.PatientFirstName = "" },
			"patient_first_name is required",
		},
		"missing last name": {
			func(r *CheckEligibilityRequest) { r.PatientLastName = "" },
			"patient_last_name is required",
		},
		"missing date of birth": {
			func(r *CheckEligibilityRequest) { r.PatientDOB = Date{} },
			"patient_dob is required",
		},
		"missing insurer": {
			func(r *CheckEligibilityRequest) { r.InsuranceCompany = "" },
			"insurance_company is required",
		},
		"missing member id": {
			func(r *CheckEligibilityRequest) { r.MemberID = "" },
			"member_id is required",
		},
		"first name too long": {
			func(r *CheckEligibilityRequest) { r.PatientFirstName = strings.Repeat("a", 101) },
			"patient_first_name must be 100 characters or less",
		},
		"insurer too long": {
			func(r *CheckEligibilityRequest) { r.InsuranceCompany = strings.Repeat("a", 256) },
			"insurance_company must be 255 characters or less",
		},
		"member id too long": {
			func(r *CheckEligibilityRequest) { r.MemberID = strings.Repeat("a", 51) },
			"member_id must be 50 characters or less",
		},
		"group number too long": {
			func(r *CheckEligibilityRequest) { r.GroupNumber = strings.Repeat("a", 51) },
			"group_number must be 50 characters or less",
		},
	}
	for name, tc := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validCheckRequest()
			tc.mutate(&req)

			err := req.Validate()
			assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
			assert.Equal(t, tc.message, dErrors.MessageOf(err))
		})
	}

	t.Run("size checked before required", func(t *testing.T) {
		req := validCheckRequest()
		req.MemberID = ""
		req.PatientFirstName = strings.Repeat("a", 101)

		assert.Equal(t, "patient_first_name must be 100 characters or less", dErrors.MessageOf(req.Validate()))
	})
}

func TestHistoryRequest_Validate(t *testing.T) {
	start := NewDate(2026, time.March, 1)
	end := NewDate(2026, time.March, 5)

	cases := map[string]struct {
		req HistoryRequest
		ok  bool
	}{
		"defaults":            {HistoryRequest{Page: 1, Limit: DefaultPageLimit}, true},
		"max limit":           {HistoryRequest{Page: 1, Limit: MaxPageLimit}, true},
		"with date range":     {HistoryRequest{Page: 1, Limit: 50, StartDate: &start, EndDate: &end}, true},
		"same-day range":      {HistoryRequest{Page: 1, Limit: 50, StartDate: &start, EndDate: &start}, true},
		"page zero":           {HistoryRequest{Page: 0, Limit: 50}, false},
		"limit zero":          {HistoryRequest{Page: 1, Limit: 0}, false},
		"limit above maximum": {HistoryRequest{Page: 1, Limit: MaxPageLimit + 1}, false},
		"inverted range":      {HistoryRequest{Page: 1, Limit: 50, StartDate: &end, EndDate: &start}, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
			}
		})
	}
}

func TestHistoryFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, HistoryFilter{Page: 1, Limit: 50}.Offset())
	assert.Equal(t, 100, HistoryFilter{Page: 3, Limit: 50}.Offset())
}
