package service

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// SessionService keeps one form per chat
type SessionService struct {
	deps   FormDeps
	logger *zap.Logger

	forms    map[int64]*FormService
	formsMux sync.RWMutex

	inflight sync.WaitGroup
}

// NewSessionService creates a new session service
func NewSessionService(deps FormDeps) *SessionService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &SessionService{
		deps:   deps,
		logger: deps.Logger,
		forms:  make(map[int64]*FormService),
	}
}

// Form returns the chat's form, creating an empty one on first use
func (s *SessionService) Form(chatID int64) *FormService {
	s.formsMux.RLock()
	form, ok := s.forms[chatID]
	s.formsMux.RUnlock()
	if ok {
		return form
	}

	s.formsMux.Lock()
	defer s.formsMux.Unlock()

	if form, ok := s.forms[chatID]; ok {
		return form
	}
	form = newFormService(s.deps, chatID, &s.inflight)
	s.forms[chatID] = form

	s.logger.Debug("Form created", zap.Int64("chat_id", chatID))
	return form
}

// Reset discards the chat's form
func (s *SessionService) Reset(chatID int64) {
	s.formsMux.Lock()
	defer s.formsMux.Unlock()
	delete(s.forms, chatID)
}

// EvictIdle discards forms untouched for longer than maxIdle and
// returns how many were dropped. Forms are inspected outside the map
// lock so a busy form never stalls lookups for other chats.
func (s *SessionService) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.deps.Now().Add(-maxIdle)

	s.formsMux.RLock()
	snapshot := make(map[int64]*FormService, len(s.forms))
	for chatID, form := range s.forms {
		snapshot[chatID] = form
	}
	s.formsMux.RUnlock()

	var idle []int64
	for chatID, form := range snapshot {
		if form.LastActive().Before(cutoff) {
			idle = append(idle, chatID)
		}
	}
	if len(idle) == 0 {
		return 0
	}

	s.formsMux.Lock()
	defer s.formsMux.Unlock()

	evicted := 0
	for _, chatID := range idle {
		// Reset may have replaced the form since the snapshot
		if s.forms[chatID] == snapshot[chatID] {
			delete(s.forms, chatID)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live forms
func (s *SessionService) Len() int {
	s.formsMux.RLock()
	defer s.formsMux.RUnlock()
	return len(s.forms)
}

// Wait blocks until every background submission has finished,
// including those of forms already discarded
func (s *SessionService) Wait() {
	s.inflight.Wait()
}
