package handler

import (
	"watermyplants/internal/domain"
	"watermyplants/internal/middleware"
	"watermyplants/internal/phone"
	"watermyplants/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	sessions *service.SessionService
	phones   phone.Formatter
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	sessions *service.SessionService,
	phones phone.Formatter,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		sessions: sessions,
		phones:   phones,
		logger:   logger,
	}
}

// fieldCommands maps chat commands to the form field they set
var fieldCommands = map[string]domain.Field{
	"/username": domain.FieldUsername,
	"/email":    domain.FieldEmail,
	"/phone":    domain.FieldPhone,
	"/password": domain.FieldPassword,
	"/verify":   domain.FieldVerifyPassword,
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.SessionMiddleware(h.sessions, h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/reset", h.handleReset)
	for command, field := range fieldCommands {
		h.bot.Handle(command, h.fieldHandler(field))
	}

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnSubmit, h.handleSubmit)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnSubmit = tele.Btn{
		Unique: "submit",
		Text:   "Register!",
	}
)

// formMarkup returns the submit keyboard, or nil while the form is dirty
func formMarkup(submitDisabled bool) *tele.ReplyMarkup {
	if submitDisabled {
		return nil
	}
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnSubmit))
	return menu
}

// form returns the chat's form, falling back to a direct lookup when
// the middleware did not run
func (h *Handler) form(c tele.Context) *service.FormService {
	if form, ok := middleware.FormFrom(c); ok {
		return form
	}
	return h.sessions.Form(c.Chat().ID)
}

// sendForm renders the form card
func (h *Handler) sendForm(c tele.Context, form *service.FormService) error {
	text := renderForm(form.State(), form.Errors())
	if markup := formMarkup(form.SubmitDisabled()); markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}
