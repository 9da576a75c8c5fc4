package handler

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	tele "gopkg.in/telebot.v3"

	"github.com/ozomaf/MyEnglishBot/internal/engine"
)

// Sender implements engine.Sender on top of the Telegram bot API
type Sender struct {
	bot *tele.Bot
}

// NewSender creates a sender delivering through the given bot
func NewSender(bot *tele.Bot) *Sender {
	return &Sender{bot: bot}
}

// SendText sends a plain text message
func (s *Sender) SendText(userID int64, text string) (int, error) {
	msg, err := s.bot.Send(&tele.User{ID: userID}, text)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// SendKeyboard sends a text message with an inline keyboard
func (s *Sender) SendKeyboard(userID int64, text string, keyboard [][]engine.Button) (int, error) {
	msg, err := s.bot.Send(&tele.User{ID: userID}, text, toMarkup(keyboard))
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// EditKeyboard replaces the text and keyboard of a previously sent
// message. An empty keyboard removes the buttons.
func (s *Sender) EditKeyboard(messageID int, userID int64, text string, keyboard [][]engine.Button) error {
	ref := &tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    userID,
	}
	_, err := s.bot.Edit(ref, text, toMarkup(keyboard))
	return err
}

// SendVoice sends audio bytes as a Telegram voice message
func (s *Sender) SendVoice(userID int64, audio []byte, label string) error {
	voice := &tele.Voice{
		File:    tele.FromReader(bytes.NewReader(audio)),
		Caption: label,
	}
	_, err := s.bot.Send(&tele.User{ID: userID}, voice)
	return err
}

// toMarkup converts the engine's keyboard grid into telebot markup
func toMarkup(keyboard [][]engine.Button) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{}}
	for _, row := range keyboard {
		buttons := make([]tele.InlineButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tele.InlineButton{
				Text: btn.Label,
				Data: btn.Data,
			})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	return markup
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}
