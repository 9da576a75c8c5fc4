package postgres

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

func TestUserRepo_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	t.Run("user exists", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"user_id", "username", "dialogue_step", "source_lang", "target_lang", "inline_message_id",
		}).AddRow(int64(42), "azat", "wait_for_translation", "EN", "RU", 100)

		mock.ExpectQuery("SELECT user_id, username, dialogue_step").
			WithArgs(int64(42)).
			WillReturnRows(rows)

		user, err := repo.FindByID(42)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "azat", user.Username)
		assert.Equal(t, domain.StepWaitForTranslation, user.DialogueStep)
		assert.Equal(t, domain.EN, user.Source)
		assert.Equal(t, domain.RU, user.Target)
		assert.Equal(t, 100, user.InlineMessageID)
	})

	t.Run("user does not exist", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, username, dialogue_step").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{
				"user_id", "username", "dialogue_step", "source_lang", "target_lang", "inline_message_id",
			}))

		user, err := repo.FindByID(7)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query fails", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, username, dialogue_step").
			WithArgs(int64(7)).
			WillReturnError(errors.New("connection refused"))

		user, err := repo.FindByID(7)
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	t.Run("upsert succeeds", func(t *testing.T) {
		user := &domain.User{
			ID:              42,
			Username:        "azat",
			DialogueStep:    domain.StepWaitForTranslation,
			Source:          domain.EN,
			Target:          domain.RU,
			InlineMessageID: 100,
		}

		mock.ExpectExec("INSERT INTO users").
			WithArgs(int64(42), "azat", "wait_for_translation", "EN", "RU", 100).
			WillReturnResult(sqlmock.NewResult(0, 1))

		saved, err := repo.Save(user)
		require.NoError(t, err)
		assert.Equal(t, user, saved)
	})

	t.Run("upsert with empty state", func(t *testing.T) {
		user := &domain.User{ID: 7, Username: "newcomer"}

		mock.ExpectExec("INSERT INTO users").
			WithArgs(int64(7), "newcomer", "", "", "", 0).
			WillReturnResult(sqlmock.NewResult(0, 1))

		saved, err := repo.Save(user)
		require.NoError(t, err)
		assert.Equal(t, user, saved)
	})

	t.Run("exec fails", func(t *testing.T) {
		user := &domain.User{ID: 7, Username: "newcomer"}

		mock.ExpectExec("INSERT INTO users").
			WithArgs(int64(7), "newcomer", "", "", "", 0).
			WillReturnError(errors.New("connection refused"))

		saved, err := repo.Save(user)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
