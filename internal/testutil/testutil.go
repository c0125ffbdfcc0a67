package testutil

import (
	"sync"
	"time"

	"watermyplants/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewValidForm returns a form state that passes every rule
func NewValidForm() domain.FormState {
	return domain.FormState{
		Username:       "bob-1",
		Email:          "bob@example.com",
		Phone:          "+1 (415) 555-1234",
		Password:       "Tr0ub4dor&3",
		VerifyPassword: "Tr0ub4dor&3",
		PasswordScore:  4,
	}
}

// Clock is a settable time source, safe for concurrent use
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

// NewClock creates a clock at a fixed instant
func NewClock() *Clock {
	return &Clock{t: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
}

// Now returns the clock's time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
