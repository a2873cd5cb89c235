package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	id "carelink/pkg/domain"
)

func TestNewPagination(t *testing.T) {
	cases := map[string]struct {
		total int
		limit int
		pages int
	}{
		"empty":           {0, 50, 0},
		"partial page":    {10, 50, 1},
		"exact pages":     {100, 50, 2},
		"trailing page":   {137, 50, 3},
		"single per page": {3, 1, 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := NewPagination(1, tc.limit, tc.total)
			assert.Equal(t, tc.pages, p.Pages)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestCheckStatusFor(t *testing.T) {
	assert.Equal(t, CheckStatusSuccess, CheckStatusFor(ResultStatusActive))
	assert.Equal(t, CheckStatusSuccess, CheckStatusFor(ResultStatusInactive))
	assert.Equal(t, CheckStatusSuccess, CheckStatusFor(ResultStatusNotFound))
	assert.Equal(t, CheckStatusError, CheckStatusFor(ResultStatusError))
}

func TestCheck_ResultStatus(t *testing.T) {
	withPayload := Check{ResponseData: &ResponsePayload{Status: ResultStatusNotFound}}
	assert.Equal(t, ResultStatusNotFound, withPayload.ResultStatus())

	// Legacy rows persisted without a payload read back as errors.
	withoutPayload := Check{Status: CheckStatusError}
	assert.Equal(t, ResultStatusError, withoutPayload.ResultStatus())
}

func TestCheckResponseFrom(t *testing.T) {
	checkID := id.CheckID(uuid.New())
	created := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("verified check carries coverage", func(t *testing.T) {
		check := &Check{
			ID:     checkID,
			Status: CheckStatusSuccess,
			ResponseData: &ResponsePayload{
				Status:     ResultStatusActive,
				Coverage:   &Coverage{PlanName: "Gold PPO"},
				Subscriber: &Subscriber{Name: "Jane Doe"},
			},
			ResponseTimeMs: 850,
			CreatedAt:      created,
		}

		resp := CheckResponseFrom(check)
		assert.Equal(t, checkID.String(), resp.ID)
		assert.Equal(t, ResultStatusActive, resp.Status)
		assert.Equal(t, "Gold PPO", resp.Coverage.PlanName)
		assert.Equal(t, "Jane Doe", resp.Subscriber.Name)
		assert.Empty(t, resp.ErrorMessage)
	})

	t.Run("failed check carries the message only", func(t *testing.T) {
		check := &Check{
			ID:           checkID,
			Status:       CheckStatusError,
			ResponseData: &ResponsePayload{Status: ResultStatusError},
			ErrorMessage: "Insurance provider system temporarily unavailable",
			CreatedAt:    created,
		}

		resp := CheckResponseFrom(check)
		assert.Equal(t, ResultStatusError, resp.Status)
		assert.Nil(t, resp.Coverage)
		assert.Nil(t, resp.Subscriber)
		assert.NotEmpty(t, resp.ErrorMessage)
	})
}

func TestHistoryItemFrom(t *testing.T) {
	check := &Check{
		ID:               id.CheckID(uuid.New()),
		PatientFirstName: "Jane",
		PatientLastName:  "Doe",
		PatientDOB:       NewDate(1990, time.January, 1),
		InsuranceCompany: "Acme Health",
		MemberID:         "M123456",
		GroupNumber:      "GRP1",
		Status:           CheckStatusSuccess,
		ResponseData:     &ResponsePayload{Status: ResultStatusActive},
		ResponseTimeMs:   850,
		CreatedAt:        time.Now(),
	}

	item := HistoryItemFrom(check)
	assert.Equal(t, check.ID.String(), item.ID)
	assert.Equal(t, "M123456", item.MemberID)
	assert.Equal(t, ResultStatusActive, item.Status)
	assert.Equal(t, check.ResponseData, item.ResponseData)
}
