package handler

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleSubmit handles the Register! button. A button left over from an
// earlier, clean rendering of the form counts as disabled once the form
// is dirty again.
func (h *Handler) handleSubmit(c tele.Context) error {
	chatID := c.Chat().ID
	form := h.form(c)

	if !form.TrySubmit(context.Background()) {
		h.logger.Info("Submit pressed on dirty form",
			zap.Int64("chat_id", chatID),
			zap.Int("errors", len(form.Errors())),
		)
		return c.Respond(&tele.CallbackResponse{
			Text:      "Fix the highlighted fields first",
			ShowAlert: true,
		})
	}

	h.logger.Info("Registration submitted", zap.Int64("chat_id", chatID))

	// The outcome is only logged; acknowledge the press and nothing more
	return c.Respond()
}

// handleCallback handles callbacks whose Unique did not come through
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Chat().ID),
	)

	if callback.Unique == btnSubmit.Unique || data == btnSubmit.Unique {
		return h.handleSubmit(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
