package handler

import (
	"strings"

	"watermyplants/internal/domain"
	"watermyplants/internal/phone"
	"watermyplants/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// fieldHandler returns the handler for a field command such as
// "/email bob@example.com"
func (h *Handler) fieldHandler(field domain.Field) tele.HandlerFunc {
	return func(c tele.Context) error {
		chatID := c.Chat().ID
		form := h.form(c)
		value := trimValue(field, commandPayload(c))

		if field.Secret() {
			// Passwords should not stay in the chat history
			if err := c.Delete(); err != nil {
				h.logger.Warn("Failed to delete password message",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
			}
		}

		if err := applyField(form, h.phones, field, value); err != nil {
			h.logger.Error("Failed to update form",
				zap.Int64("chat_id", chatID),
				zap.String("field", string(field)),
				zap.Error(err),
			)
			return c.Send("Something went wrong. Try again.")
		}

		h.logger.Debug("Field updated",
			zap.Int64("chat_id", chatID),
			zap.String("field", string(field)),
			zap.String("status", string(form.Status())),
		)

		return h.sendForm(c, form)
	}
}

// applyField routes a field value to the matching form operation
func applyField(form *service.FormService, phones phone.Formatter, field domain.Field, value string) error {
	switch field {
	case domain.FieldPhone:
		return form.OnPhoneChange(phones.Format(value))
	case domain.FieldPassword:
		return form.OnPasswordChange(value)
	default:
		return form.OnFieldChange(field, value)
	}
}

// commandPayload returns the text after the command
func commandPayload(c tele.Context) string {
	msg := c.Message()
	if msg == nil {
		return ""
	}
	return msg.Payload
}

// trimValue trims surrounding space from non-secret values.
// Passwords are taken as typed.
func trimValue(field domain.Field, value string) string {
	if field.Secret() {
		return value
	}
	return strings.TrimSpace(value)
}
