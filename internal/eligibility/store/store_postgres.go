package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carelink/internal/eligibility/models"
	id "carelink/pkg/domain"
	"carelink/pkg/platform/sentinel"
)

// Schema is the DDL for the check history table. Integration tests apply it
// to fresh databases; deployments manage it through their migration tooling.
const Schema = `
CREATE TABLE IF NOT EXISTS eligibility_checks (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	organization_id UUID NOT NULL,
	patient_first_name VARCHAR(100) NOT NULL,
	patient_last_name VARCHAR(100) NOT NULL,
	patient_dob DATE NOT NULL,
	insurance_company VARCHAR(255) NOT NULL,
	member_id VARCHAR(50) NOT NULL,
	group_number VARCHAR(50),
	status VARCHAR(20) NOT NULL,
	response_data JSONB,
	error_message TEXT,
	response_time_ms INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_eligibility_checks_org_created
	ON eligibility_checks (organization_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_eligibility_checks_member
	ON eligibility_checks (member_id);
`

// PostgresCheckStore persists check history in PostgreSQL.
type PostgresCheckStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed check store.
func NewPostgres(db *sql.DB) *PostgresCheckStore {
	return &PostgresCheckStore{db: db}
}

// Insert writes one history record, assigning identity and creation time when
// absent, and returns the stored record.
func (s *PostgresCheckStore) Insert(ctx context.Context, check *models.Check) (*models.Check, error) {
	stored := *check
	if stored.ID.IsNil() {
		stored.ID = id.CheckID(uuid.New())
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	var responseData []byte
	if stored.ResponseData != nil {
		raw, err := json.Marshal(stored.ResponseData)
		if err != nil {
			return nil, fmt.Errorf("marshal response data: %w", err)
		}
		responseData = raw
	}

	query := `
		INSERT INTO eligibility_checks (
			id, user_id, organization_id,
			patient_first_name, patient_last_name, patient_dob,
			insurance_company, member_id, group_number,
			status, response_data, error_message, response_time_ms, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(stored.ID),
		uuid.UUID(stored.UserID),
		uuid.UUID(stored.OrganizationID),
		stored.PatientFirstName,
		stored.PatientLastName,
		stored.PatientDOB,
		stored.InsuranceCompany,
		stored.MemberID,
		nullString(stored.GroupNumber),
		string(stored.Status),
		responseData,
		nullString(stored.ErrorMessage),
		stored.ResponseTimeMs,
		stored.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert eligibility check: %w", err)
	}
	return &stored, nil
}

// FindByID returns the check only when it belongs to the organization.
// Missing and foreign-organization records both surface as sentinel.ErrNotFound
// so existence never leaks across organizations.
func (s *PostgresCheckStore) FindByID(ctx context.Context, orgID id.OrganizationID, checkID id.CheckID) (*models.Check, error) {
	query := selectColumns + `
		WHERE id = $1 AND organization_id = $2
	`
	row := s.db.QueryRowContext(ctx, query, uuid.UUID(checkID), uuid.UUID(orgID))
	check, err := scanCheck(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find eligibility check: %w", err)
	}
	return check, nil
}

// ListHistory returns one page of the organization's checks ordered by
// creation time descending, plus the pre-pagination match count.
func (s *PostgresCheckStore) ListHistory(ctx context.Context, filter models.HistoryFilter) ([]*models.Check, int, error) {
	where := ` WHERE organization_id = $1`
	args := []any{uuid.UUID(filter.OrganizationID)}

	if filter.StartDate != nil {
		args = append(args, filter.StartDate.Time)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.EndDate != nil {
		// Inclusive end date: cover the whole calendar day.
		args = append(args, filter.EndDate.Time.AddDate(0, 0, 1))
		where += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM eligibility_checks` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count eligibility checks: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset())
	query := selectColumns + where + fmt.Sprintf(`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list eligibility checks: %w", err)
	}
	defer rows.Close()

	var checks []*models.Check
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan eligibility check: %w", err)
		}
		checks = append(checks, check)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate eligibility checks: %w", err)
	}
	return checks, total, nil
}

const selectColumns = `
	SELECT id, user_id, organization_id,
		patient_first_name, patient_last_name, patient_dob,
		insurance_company, member_id, group_number,
		status, response_data, error_message, response_time_ms, created_at
	FROM eligibility_checks
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheck(row rowScanner) (*models.Check, error) {
	var (
		check        models.Check
		checkID      uuid.UUID
		userID       uuid.UUID
		orgID        uuid.UUID
		groupNumber  sql.NullString
		responseData []byte
		errorMessage sql.NullString
		status       string
	)
	err := row.Scan(
		&checkID,
		&userID,
		&orgID,
		&check.PatientFirstName,
		&check.PatientLastName,
		&check.PatientDOB,
		&check.InsuranceCompany,
		&check.MemberID,
		&groupNumber,
		&status,
		&responseData,
		&errorMessage,
		&check.ResponseTimeMs,
		&check.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	check.ID = id.CheckID(checkID)
	check.UserID = id.UserID(userID)
	check.OrganizationID = id.OrganizationID(orgID)
	check.GroupNumber = groupNumber.String
	check.ErrorMessage = errorMessage.String
	check.Status = models.CheckStatus(status)

	if len(responseData) > 0 {
		var payload models.ResponsePayload
		if err := json.Unmarshal(responseData, &payload); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
		check.ResponseData = &payload
	}
	return &check, nil
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
