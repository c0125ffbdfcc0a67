package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	fields := []zap.Field{zap.Int64("chat_id", c.Chat().ID)}
	if sender := c.Sender(); sender != nil {
		fields = append(fields, zap.String("telegram_user", sender.Username))
	}
	h.logger.Info("User opened registration form", fields...)

	return h.sendForm(c, h.form(c))
}

// handleReset discards the chat's form and shows a fresh one
func (h *Handler) handleReset(c tele.Context) error {
	chatID := c.Chat().ID
	h.sessions.Reset(chatID)

	h.logger.Info("Form reset", zap.Int64("chat_id", chatID))

	return h.sendForm(c, h.sessions.Form(chatID))
}

// handleText answers free text with the form and usage
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Unknown commands fall through to here as well
	if strings.HasPrefix(text, "/") {
		h.logger.Debug("Unknown command", zap.String("command", strings.Fields(text)[0]))
	}

	return h.sendForm(c, h.form(c))
}
