package middleware

import (
	"watermyplants/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const formKey = "form"

// SessionMiddleware attaches the chat's registration form to the context
func SessionMiddleware(sessions *service.SessionService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				logger.Debug("Update without chat, skipping form lookup")
				return next(c)
			}

			c.Set(formKey, sessions.Form(chat.ID))
			return next(c)
		}
	}
}

// FormFrom returns the form attached by SessionMiddleware, if any
func FormFrom(c tele.Context) (*service.FormService, bool) {
	form, ok := c.Get(formKey).(*service.FormService)
	return form, ok && form != nil
}
