package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"watermyplants/internal/client"
	"watermyplants/internal/domain"
	"watermyplants/internal/repository"
	"watermyplants/internal/strength"
	"watermyplants/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FormDeps are the collaborators shared by every form.
// Estimator and Now are optional.
type FormDeps struct {
	Validator *validation.Validator
	Registrar client.Registrar
	Journal   repository.SubmissionRepository
	Estimator strength.Estimator
	Logger    *zap.Logger
	Now       func() time.Time
}

// FormService owns one registration form: its values and the
// validation errors derived from them. Every mutation replaces the
// whole state and re-validates before the lock is released, so Errors
// never lags behind State.
type FormService struct {
	deps   FormDeps
	chatID int64

	mu         sync.Mutex
	state      domain.FormState
	errors     domain.ValidationErrors
	lastActive time.Time

	// passwordSeq orders OnPasswordChange calls so a slower, older
	// estimate never overwrites a newer password
	passwordSeq uint64

	inflight *sync.WaitGroup
}

// NewFormService creates an empty form
func NewFormService(deps FormDeps, chatID int64) *FormService {
	return newFormService(deps, chatID, &sync.WaitGroup{})
}

func newFormService(deps FormDeps, chatID int64, inflight *sync.WaitGroup) *FormService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s := &FormService{
		deps:     deps,
		chatID:   chatID,
		inflight: inflight,
	}
	s.commit(domain.EmptyForm())
	return s
}

// commit swaps in the new state and re-validates it. Caller holds mu
// (or owns s exclusively).
func (s *FormService) commit(next domain.FormState) {
	s.state = next
	s.errors = s.deps.Validator.Validate(next)
	s.lastActive = s.deps.Now()
}

// OnFieldChange replaces one text field
func (s *FormService) OnFieldChange(field domain.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.With(field, value)
	if err != nil {
		return fmt.Errorf("change %q: %w", field, err)
	}
	s.commit(next)
	return nil
}

// OnPhoneChange replaces the phone number
func (s *FormService) OnPhoneChange(value string) error {
	return s.OnFieldChange(domain.FieldPhone, value)
}

// OnPasswordScoreChange records a new strength score
func (s *FormService) OnPasswordScoreChange(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.WithScore(score)
	if err != nil {
		return fmt.Errorf("change score to %d: %w", score, err)
	}
	s.commit(next)
	return nil
}

// OnPasswordChange replaces the password and, when an estimator is
// configured, its score in the same transition. The estimate runs
// without holding the form lock; if another password change starts in
// the meantime this one is dropped.
func (s *FormService) OnPasswordChange(password string) error {
	if s.deps.Estimator == nil {
		return s.OnFieldChange(domain.FieldPassword, password)
	}

	s.mu.Lock()
	s.passwordSeq++
	seq := s.passwordSeq
	username, email := s.state.Username, s.state.Email
	s.mu.Unlock()

	score := s.deps.Estimator.Score(password, username, email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.passwordSeq {
		return nil
	}
	next, err := s.state.With(domain.FieldPassword, password)
	if err != nil {
		return err
	}
	next, err = next.WithScore(score)
	if err != nil {
		return fmt.Errorf("change score to %d: %w", score, err)
	}
	s.commit(next)
	return nil
}

// OnSubmit sends the current values to the registration API in the
// background and returns immediately. It does not check validity; the
// caller's submit control is what keeps a dirty form from being sent.
// The outcome is logged and journaled, never reported back.
func (s *FormService) OnSubmit(ctx context.Context) {
	s.mu.Lock()
	payload := s.state.Payload()
	s.lastActive = s.deps.Now()
	s.mu.Unlock()

	s.dispatch(ctx, payload)
}

// TrySubmit submits like OnSubmit, but only when the form is clean. The
// check and the payload snapshot happen under one lock, so a concurrent
// change cannot slip a dirty payload through. It reports whether a
// submission was started.
func (s *FormService) TrySubmit(ctx context.Context) bool {
	s.mu.Lock()
	if s.errors.Status() != domain.StatusClean {
		s.mu.Unlock()
		return false
	}
	payload := s.state.Payload()
	s.lastActive = s.deps.Now()
	s.mu.Unlock()

	s.dispatch(ctx, payload)
	return true
}

func (s *FormService) dispatch(ctx context.Context, payload domain.NewUserPayload) {
	ctx = context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.send(ctx, payload)
	}()
}

func (s *FormService) send(ctx context.Context, payload domain.NewUserPayload) {
	logger := s.deps.Logger.With(
		zap.Int64("chat_id", s.chatID),
		zap.String("username", payload.Username),
	)

	sub := domain.Submission{
		ID:        uuid.NewString(),
		ChatID:    s.chatID,
		Username:  payload.Username,
		Email:     payload.Email,
		CreatedAt: s.deps.Now(),
	}

	res, err := s.deps.Registrar.Register(ctx, payload)
	if err != nil {
		sub.Status = domain.SubmissionFailed
		sub.Error = err.Error()
		logger.Error("Registration request failed", zap.Error(err))
	} else {
		sub.Status = domain.SubmissionSent
		sub.StatusCode = res.StatusCode
		level := zap.InfoLevel
		if !res.Success() {
			level = zap.WarnLevel
		}
		logger.Log(level, "Registration response received",
			zap.Int("status_code", res.StatusCode),
			zap.String("body", res.Body),
		)
	}

	if err := s.deps.Journal.Record(ctx, sub); err != nil {
		logger.Error("Failed to journal submission",
			zap.String("submission_id", sub.ID),
			zap.Error(err),
		)
	}
}

// Wait blocks until background submissions have finished
func (s *FormService) Wait() {
	s.inflight.Wait()
}

// State returns the current values
func (s *FormService) State() domain.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Errors returns a copy of the current validation errors
func (s *FormService) Errors() domain.ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors.Clone()
}

// Status reports whether the form is clean or dirty
func (s *FormService) Status() domain.FormStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors.Status()
}

// SubmitDisabled is true while any field fails validation
func (s *FormService) SubmitDisabled() bool {
	return s.Status() != domain.StatusClean
}

// Label returns the field name, followed by its error in parentheses
// when the field is invalid
func (s *FormService) Label(field domain.Field) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FormatLabel(field, s.errors)
}

// LastActive returns when the form was last changed or submitted
func (s *FormService) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// FormatLabel renders "Name (error)" for failing fields and "Name" otherwise
func FormatLabel(field domain.Field, errs domain.ValidationErrors) string {
	if msg, ok := errs[field]; ok {
		return fmt.Sprintf("%s (%s)", field.DisplayName(), msg)
	}
	return field.DisplayName()
}
