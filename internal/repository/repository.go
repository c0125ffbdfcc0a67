package repository

import (
	"context"

	"watermyplants/internal/domain"
)

// SubmissionRepository journals registration attempts
type SubmissionRepository interface {
	Record(ctx context.Context, s domain.Submission) error
	CleanOld(ctx context.Context, days int) (int64, error)
}
