package testutil

import (
	"go.uber.org/zap"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user with no dialogue in progress
func NewTestUser(userID int64, username string) *domain.User {
	return &domain.User{
		ID:       userID,
		Username: username,
	}
}

// NewWaitingUser creates a test user waiting to send text for translation
func NewWaitingUser(userID int64, username string, source, target domain.Language) *domain.User {
	return &domain.User{
		ID:           userID,
		Username:     username,
		DialogueStep: domain.StepWaitForTranslation,
		Source:       source,
		Target:       target,
	}
}
