package journal

import (
	"context"
	"testing"
	"time"

	"watermyplants/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogRepo_Record(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	repo := NewLogRepo(zap.New(core))

	err := repo.Record(context.Background(), domain.Submission{
		ID:         "id-1",
		ChatID:     42,
		Username:   "bob-1",
		Email:      "bob@example.com",
		Status:     domain.SubmissionSent,
		StatusCode: 201,
		CreatedAt:  time.Now(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "Submission journaled", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "bob-1", fields["username"])
	assert.Equal(t, "sent", fields["status"])
	assert.Equal(t, int64(201), fields["status_code"])
	assert.NotContains(t, fields, "password")
}

func TestLogRepo_CleanOld(t *testing.T) {
	repo := NewLogRepo(zap.NewNop())

	deleted, err := repo.CleanOld(context.Background(), 30)

	assert.NoError(t, err)
	assert.Zero(t, deleted)
}
