package middleware

import (
	"testing"

	"watermyplants/internal/service"
	"watermyplants/internal/testutil"
	"watermyplants/internal/validation"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func newSessions() *service.SessionService {
	return service.NewSessionService(service.FormDeps{
		Validator: validation.New(),
		Registrar: new(testutil.MockRegistrar),
		Journal:   new(testutil.MockSubmissionRepository),
		Logger:    testutil.NewTestLogger(),
	})
}

func TestSessionMiddleware_AttachesChatForm(t *testing.T) {
	sessions := newSessions()
	mw := SessionMiddleware(sessions, testutil.NewTestLogger())

	var got *service.FormService
	handler := mw(func(c tele.Context) error {
		form, ok := FormFrom(c)
		assert.True(t, ok)
		got = form
		return nil
	})

	c := (&tele.Bot{}).NewContext(tele.Update{
		Message: &tele.Message{Chat: &tele.Chat{ID: 42}, Text: "/start"},
	})

	assert.NoError(t, handler(c))
	assert.Same(t, sessions.Form(42), got)
}

func TestSessionMiddleware_NoChat(t *testing.T) {
	sessions := newSessions()
	mw := SessionMiddleware(sessions, testutil.NewTestLogger())

	called := false
	handler := mw(func(c tele.Context) error {
		called = true
		_, ok := FormFrom(c)
		assert.False(t, ok)
		return nil
	})

	assert.NoError(t, handler((&tele.Bot{}).NewContext(tele.Update{})))
	assert.True(t, called)
	assert.Equal(t, 0, sessions.Len())
}
