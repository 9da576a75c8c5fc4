package domain

// DialogueStep represents user's current position in a conversation flow
type DialogueStep string

const (
	StepNone               DialogueStep = ""
	StepWaitForTranslation DialogueStep = "wait_for_translation"
)

// User represents a bot user together with their conversational state.
// Values are treated as immutable snapshots: the With* methods return
// modified copies and every change reaches the database through a
// single repository.Save call.
type User struct {
	ID              int64
	Username        string
	DialogueStep    DialogueStep
	Source          Language
	Target          Language
	InlineMessageID int
}

// WithUsername returns a copy of the user with the username replaced
func (u User) WithUsername(username string) *User {
	u.Username = username
	return &u
}

// WithDialogueStep returns a copy of the user with the dialogue step replaced
func (u User) WithDialogueStep(step DialogueStep) *User {
	u.DialogueStep = step
	return &u
}

// WithLanguages returns a copy of the user with the translation pair replaced
func (u User) WithLanguages(source, target Language) *User {
	u.Source = source
	u.Target = target
	return &u
}

// WithInlineMessageID returns a copy of the user remembering the id of
// the last message that carries an inline keyboard
func (u User) WithInlineMessageID(messageID int) *User {
	u.InlineMessageID = messageID
	return &u
}
