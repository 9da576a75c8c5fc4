package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

// dispatchCallback parses the callback payload and routes it to the
// action-specific responder. An unknown or malformed payload is
// logged as an anomaly and otherwise ignored.
func (e *Engine) dispatchCallback(ctx context.Context, user *domain.User, cb Callback) {
	action, fields, err := ParsePayload(cb.Data)
	if err != nil {
		e.logger.Warn("Malformed callback payload",
			zap.Int64("user_id", user.ID),
			zap.String("data", cb.Data),
		)
		return
	}

	switch action {
	case ActionSelectLanguage:
		e.handleLanguageSelection(user, fields)
	case ActionVoice:
		e.handleVoice(ctx, user, fields)
	default:
		e.logger.Warn("Unknown callback action",
			zap.Int64("user_id", user.ID),
			zap.String("action", action),
		)
	}
}

// handleLanguageSelection serves a SELECT_LANG callback: remember the
// chosen language pair, enter the translation dialogue and replace
// the pair keyboard with the input prompt
func (e *Engine) handleLanguageSelection(user *domain.User, fields []string) {
	if len(fields) != 1 {
		e.logger.Warn("Unexpected language selection payload",
			zap.Int64("user_id", user.ID),
			zap.Strings("fields", fields),
		)
		return
	}

	pair, err := domain.ParseLanguagePair(fields[0])
	if err != nil {
		e.logger.Warn("Invalid language pair in callback",
			zap.Int64("user_id", user.ID),
			zap.String("pair", fields[0]),
			zap.Error(err),
		)
		return
	}

	updated := user.
		WithLanguages(pair.Source, pair.Target).
		WithDialogueStep(domain.StepWaitForTranslation)

	saved, err := e.users.Save(updated)
	if err != nil {
		e.logger.Error("Failed to save user",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return
	}

	if err := e.sender.EditKeyboard(saved.InlineMessageID, saved.ID, msgEnterText, nil); err != nil {
		e.logger.Warn("Failed to edit keyboard message",
			zap.Int64("user_id", user.ID),
			zap.Int("message_id", saved.InlineMessageID),
			zap.Error(err),
		)
	}
}

// handleVoice serves a VOICE callback: synthesize the translated text
// and send it back as a voice message
func (e *Engine) handleVoice(ctx context.Context, user *domain.User, fields []string) {
	if len(fields) != 2 {
		e.logger.Warn("Unexpected voice payload",
			zap.Int64("user_id", user.ID),
			zap.Strings("fields", fields),
		)
		return
	}

	text := fields[0]
	language, err := domain.ParseLanguage(fields[1])
	if err != nil {
		e.logger.Warn("Invalid language in voice callback",
			zap.Int64("user_id", user.ID),
			zap.String("language", fields[1]),
			zap.Error(err),
		)
		return
	}

	audio, err := e.gateway.Speech(ctx, language, text)
	if err != nil {
		e.logger.Error("Failed to synthesize speech",
			zap.Int64("user_id", user.ID),
			zap.String("language", language.String()),
			zap.Error(err),
		)
		return
	}

	if err := e.sender.SendVoice(user.ID, audio, text); err != nil {
		e.logger.Warn("Failed to send voice message",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
	}
}
