package engine

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
	"github.com/ozomaf/MyEnglishBot/internal/repository"
	"github.com/ozomaf/MyEnglishBot/internal/translator"
)

// User-facing messages
const (
	msgListenTranslation = "Прослушать перевод"
	msgEnterText         = "Введите текст для перевода"
)

// Peer identifies the sender of an inbound event
type Peer struct {
	ID       int64
	Username string
}

// Message is an inbound plain-text message
type Message struct {
	From Peer
	Text string
}

// Callback is an inbound callback query produced by an inline button press
type Callback struct {
	From Peer
	// Data is the opaque payload chosen when the button was created
	Data string
	// MessageID is the id of the message the button belongs to
	MessageID int
}

// Engine routes inbound events through the dialogue state machine.
// For each event it resolves the acting user, tries the command
// registry, then the callback dispatch, then falls back to
// state-driven free-text processing.
type Engine struct {
	sender   Sender
	users    repository.UserRepository
	gateway  translator.Gateway
	commands *CommandRegistry
	logger   *zap.Logger

	// Per-user locks serialize read-modify-write of a user record so
	// two events for the same user cannot lose an update
	userLocks map[int64]*sync.Mutex
	locksMux  sync.Mutex
}

// New creates an engine with the built-in commands registered
func New(
	sender Sender,
	users repository.UserRepository,
	gateway translator.Gateway,
	logger *zap.Logger,
) *Engine {
	e := &Engine{
		sender:    sender,
		users:     users,
		gateway:   gateway,
		logger:    logger,
		userLocks: make(map[int64]*sync.Mutex),
	}
	e.commands = defaultCommands()
	return e
}

// Commands returns the registered commands in registration order
func (e *Engine) Commands() []Command {
	return e.commands.Commands()
}

// HandleMessage processes one inbound plain-text message
func (e *Engine) HandleMessage(ctx context.Context, msg Message) {
	unlock := e.lockUser(msg.From.ID)
	defer unlock()

	user, err := e.resolveUser(msg.From)
	if err != nil {
		e.logger.Error("Failed to resolve user",
			zap.Int64("user_id", msg.From.ID),
			zap.Error(err),
		)
		return
	}

	if e.commands.Handle(e, user, msg) {
		return
	}

	switch user.DialogueStep {
	case domain.StepWaitForTranslation:
		e.handleTranslation(ctx, user, msg.Text)
	default:
		// No dialogue in progress, echo the message back
		if _, err := e.sender.SendText(user.ID, msg.Text); err != nil {
			e.logger.Warn("Failed to send echo reply",
				zap.Int64("user_id", user.ID),
				zap.Error(err),
			)
		}
	}
}

// HandleCallback processes one inbound callback query
func (e *Engine) HandleCallback(ctx context.Context, cb Callback) {
	unlock := e.lockUser(cb.From.ID)
	defer unlock()

	user, err := e.resolveUser(cb.From)
	if err != nil {
		e.logger.Error("Failed to resolve user",
			zap.Int64("user_id", cb.From.ID),
			zap.Error(err),
		)
		return
	}

	e.dispatchCallback(ctx, user, cb)
}

// handleTranslation serves a message sent while the user waits for a
// translation: translate it, reply with a "listen" button and leave
// the dialogue
func (e *Engine) handleTranslation(ctx context.Context, user *domain.User, text string) {
	translated, err := e.gateway.Translate(ctx, user.Source, user.Target, text)
	if err != nil {
		e.logger.Error("Failed to translate text",
			zap.Int64("user_id", user.ID),
			zap.String("source", user.Source.String()),
			zap.String("target", user.Target.String()),
			zap.Error(err),
		)
		return
	}

	keyboard := BuildKeyboard([]Button{{
		Label: msgListenTranslation,
		Data:  FormatPayload(ActionVoice, translated, user.Target.String()),
	}}, 1)

	updated := user.WithDialogueStep(domain.StepNone)

	messageID, err := e.sender.SendKeyboard(user.ID, translated, keyboard)
	if err != nil {
		e.logger.Warn("Failed to send translation",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
	} else {
		updated = updated.WithInlineMessageID(messageID)
	}

	if _, err := e.users.Save(updated); err != nil {
		e.logger.Error("Failed to save user",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
	}
}

// sendKeyboard sends an inline keyboard and remembers the sent message
// id on the user record so the keyboard can be edited later
func (e *Engine) sendKeyboard(user *domain.User, text string, keyboard [][]Button) {
	messageID, err := e.sender.SendKeyboard(user.ID, text, keyboard)
	if err != nil {
		e.logger.Warn("Failed to send inline keyboard",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return
	}

	if _, err := e.users.Save(user.WithInlineMessageID(messageID)); err != nil {
		e.logger.Error("Failed to save user",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
	}
}

// sendText sends a plain reply, logging and dropping delivery errors
func (e *Engine) sendText(user *domain.User, text string) {
	if _, err := e.sender.SendText(user.ID, text); err != nil {
		e.logger.Warn("Failed to send message",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
	}
}

// resolveUser builds a candidate user from the event sender and
// reconciles it with the stored record. A record is created lazily on
// first contact and the stored username follows renames, while all
// other fields always come from the store so dialogue state survives
// a rename.
func (e *Engine) resolveUser(peer Peer) (*domain.User, error) {
	stored, err := e.users.FindByID(peer.ID)
	if err != nil {
		return nil, err
	}

	if stored == nil {
		return e.users.Save(&domain.User{ID: peer.ID, Username: peer.Username})
	}

	if stored.Username == peer.Username {
		return stored, nil
	}

	return e.users.Save(stored.WithUsername(peer.Username))
}

func (e *Engine) lockUser(userID int64) func() {
	e.locksMux.Lock()
	lock, exists := e.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		e.userLocks[userID] = lock
	}
	e.locksMux.Unlock()

	lock.Lock()
	return lock.Unlock
}
