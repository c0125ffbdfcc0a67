package service

import (
	"context"
	"time"

	"watermyplants/internal/repository"

	"go.uber.org/zap"
)

// journalRetentionDays is how long submission outcomes are kept
const journalRetentionDays = 90

// MaintenanceService discards idle forms and old journal entries
type MaintenanceService struct {
	sessions *SessionService
	journal  repository.SubmissionRepository
	idleTTL  time.Duration
	logger   *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	sessions *SessionService,
	journal repository.SubmissionRepository,
	idleTTL time.Duration,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		sessions: sessions,
		journal:  journal,
		idleTTL:  idleTTL,
		logger:   logger,
	}
}

// EvictIdleForms drops forms nobody touched within the idle TTL
func (s *MaintenanceService) EvictIdleForms() int {
	evicted := s.sessions.EvictIdle(s.idleTTL)
	if evicted > 0 {
		s.logger.Info("Evicted idle forms",
			zap.Int("evicted", evicted),
			zap.Int("remaining", s.sessions.Len()),
		)
	}
	return evicted
}

// CleanupJournal removes journal entries past retention
func (s *MaintenanceService) CleanupJournal(ctx context.Context) error {
	s.logger.Info("Starting cleanup of old submissions", zap.Int("retention_days", journalRetentionDays))

	deleted, err := s.journal.CleanOld(ctx, journalRetentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old submissions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("deleted", deleted))
	return nil
}
