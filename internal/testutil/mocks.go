package testutil

import (
	"context"

	"watermyplants/internal/client"
	"watermyplants/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRegistrar is a mock for client.Registrar
type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) Register(ctx context.Context, payload domain.NewUserPayload) (*client.Response, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}

// MockSubmissionRepository is a mock for repository.SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Record(ctx context.Context, s domain.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubmissionRepository) CleanOld(ctx context.Context, days int) (int64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(int64), args.Error(1)
}

// MockEstimator is a mock for strength.Estimator
type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) Score(password string, userInputs ...string) int {
	args := m.Called(password, userInputs)
	return args.Int(0)
}
