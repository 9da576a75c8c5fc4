package postgres

import (
	"database/sql"
	"fmt"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByID returns the user with the given id, or nil if not found
func (r *UserRepo) FindByID(userID int64) (*domain.User, error) {
	query := `
		SELECT user_id, username, dialogue_step, source_lang, target_lang, inline_message_id
		FROM users
		WHERE user_id = $1
	`

	var user domain.User
	var step, source, target string

	err := r.db.QueryRow(query, userID).Scan(
		&user.ID,
		&user.Username,
		&step,
		&source,
		&target,
		&user.InlineMessageID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", userID, err)
	}

	user.DialogueStep = domain.DialogueStep(step)
	user.Source = domain.Language(source)
	user.Target = domain.Language(target)

	return &user, nil
}

// Save upserts the user preserving all fields of the given snapshot
func (r *UserRepo) Save(user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (user_id, username, dialogue_step, source_lang, target_lang, inline_message_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET
			username = EXCLUDED.username,
			dialogue_step = EXCLUDED.dialogue_step,
			source_lang = EXCLUDED.source_lang,
			target_lang = EXCLUDED.target_lang,
			inline_message_id = EXCLUDED.inline_message_id
	`

	_, err := r.db.Exec(query,
		user.ID,
		user.Username,
		string(user.DialogueStep),
		string(user.Source),
		string(user.Target),
		user.InlineMessageID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save user %d: %w", user.ID, err)
	}

	return user, nil
}
