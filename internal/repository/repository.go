package repository

import (
	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// FindByID returns the stored user or nil when the id is unknown
	FindByID(userID int64) (*domain.User, error)
	// Save upserts the user and returns the persisted value
	Save(user *domain.User) (*domain.User, error)
}
