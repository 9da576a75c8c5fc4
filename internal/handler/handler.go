package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/ozomaf/MyEnglishBot/internal/engine"
)

// Handler adapts telebot long-poll updates into dialogue engine calls
type Handler struct {
	bot    *tele.Bot
	engine *engine.Engine
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, eng *engine.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		engine: eng,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers and publishes the
// command menu. Slash commands are not registered individually: they
// arrive as text and are matched by the engine's command registry.
func (h *Handler) RegisterHandlers() {
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	commands := make([]tele.Command, 0, len(h.engine.Commands()))
	for _, cmd := range h.engine.Commands() {
		commands = append(commands, tele.Command{
			Text:        strings.TrimPrefix(cmd.Token, "/"),
			Description: cmd.Description,
		})
	}
	if err := h.bot.SetCommands(commands); err != nil {
		h.logger.Warn("Failed to publish command menu", zap.Error(err))
	}
}

// handleText forwards a message to the engine
func (h *Handler) handleText(c tele.Context) error {
	h.engine.HandleMessage(context.Background(), engine.Message{
		From: toPeer(c.Sender()),
		Text: c.Text(),
	})
	return nil
}

// handleCallback forwards a callback query to the engine and
// acknowledges it so the client stops showing a spinner
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	cb := engine.Callback{
		From: toPeer(c.Sender()),
		Data: cleanCallbackData(callback.Data),
	}
	if callback.Message != nil {
		cb.MessageID = callback.Message.ID
	}

	h.engine.HandleCallback(context.Background(), cb)
	return c.Respond()
}

func toPeer(sender *tele.User) engine.Peer {
	if sender == nil {
		return engine.Peer{}
	}
	return engine.Peer{
		ID:       sender.ID,
		Username: sender.Username,
	}
}
