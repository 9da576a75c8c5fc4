package engine

// Button is one inline keyboard button: a visible label bound to a
// callback payload
type Button struct {
	Label string
	Data  string
}

// Sender delivers outbound actions to the messaging platform. Every
// operation reports delivery failure through its error; the engine
// logs and deliberately drops these errors, so delivery is
// fire-and-forget and never rolls back a state transition.
type Sender interface {
	// SendText sends a plain text reply and returns the message id
	SendText(userID int64, text string) (int, error)
	// SendKeyboard sends text with an inline keyboard attached and
	// returns the message id
	SendKeyboard(userID int64, text string, keyboard [][]Button) (int, error)
	// EditKeyboard replaces the text and keyboard of a sent message
	EditKeyboard(messageID int, userID int64, text string, keyboard [][]Button) error
	// SendVoice sends an audio clip as a voice message
	SendVoice(userID int64, audio []byte, label string) error
}
