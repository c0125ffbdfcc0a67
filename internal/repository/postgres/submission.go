package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"watermyplants/internal/domain"
)

// SubmissionRepo implements repository.SubmissionRepository
type SubmissionRepo struct {
	db *sql.DB
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *sql.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

// Record stores one submission outcome
func (r *SubmissionRepo) Record(ctx context.Context, s domain.Submission) error {
	query := `
		INSERT INTO submissions (id, chat_id, username, email, status, status_code, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ChatID, s.Username, s.Email, string(s.Status), s.StatusCode, s.Error, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// CleanOld deletes submissions older than the given number of days
func (r *SubmissionRepo) CleanOld(ctx context.Context, days int) (int64, error) {
	query := `
		DELETE FROM submissions
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.ExecContext(ctx, query, days)
	if err != nil {
		return 0, fmt.Errorf("delete old submissions: %w", err)
	}
	return res.RowsAffected()
}
