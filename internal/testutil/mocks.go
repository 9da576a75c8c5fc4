package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
	"github.com/ozomaf/MyEnglishBot/internal/engine"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Save(user *domain.User) (*domain.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockGateway is a mock for translator.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Translate(ctx context.Context, source, target domain.Language, text string) (string, error) {
	args := m.Called(ctx, source, target, text)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Speech(ctx context.Context, language domain.Language, text string) ([]byte, error) {
	args := m.Called(ctx, language, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSender is a mock for engine.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendText(userID int64, text string) (int, error) {
	args := m.Called(userID, text)
	return args.Int(0), args.Error(1)
}

func (m *MockSender) SendKeyboard(userID int64, text string, keyboard [][]engine.Button) (int, error) {
	args := m.Called(userID, text, keyboard)
	return args.Int(0), args.Error(1)
}

func (m *MockSender) EditKeyboard(messageID int, userID int64, text string, keyboard [][]engine.Button) error {
	args := m.Called(messageID, userID, text, keyboard)
	return args.Error(0)
}

func (m *MockSender) SendVoice(userID int64, audio []byte, label string) error {
	args := m.Called(userID, audio, label)
	return args.Error(0)
}
