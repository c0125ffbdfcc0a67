// Package journal provides a submission journal that only writes log lines.
package journal

import (
	"context"

	"watermyplants/internal/domain"

	"go.uber.org/zap"
)

// LogRepo implements repository.SubmissionRepository on top of a logger.
// It keeps nothing, so there is never anything to clean.
type LogRepo struct {
	logger *zap.Logger
}

// NewLogRepo creates a log-only journal
func NewLogRepo(logger *zap.Logger) *LogRepo {
	return &LogRepo{logger: logger}
}

// Record writes the submission as a log entry
func (r *LogRepo) Record(_ context.Context, s domain.Submission) error {
	r.logger.Info("Submission journaled",
		zap.String("submission_id", s.ID),
		zap.Int64("chat_id", s.ChatID),
		zap.String("username", s.Username),
		zap.String("status", string(s.Status)),
		zap.Int("status_code", s.StatusCode),
		zap.String("error", s.Error),
		zap.Time("created_at", s.CreatedAt),
	)
	return nil
}

// CleanOld is a no-op
func (r *LogRepo) CleanOld(_ context.Context, _ int) (int64, error) {
	return 0, nil
}
