package engine

import (
	"strings"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

// CommandFunc performs the work of a matched command. It reports
// whether the command was handled; returning false lets the engine
// fall through to free-text processing.
type CommandFunc func(e *Engine, user *domain.User, msg Message) bool

// Command is a registered slash-command
type Command struct {
	// Token is the full command token including the leading slash
	Token       string
	Description string
	Handler     CommandFunc
}

// CommandRegistry maps command tokens to their handlers, keeping
// registration order for the help listing and the bot command menu
type CommandRegistry struct {
	order    []string
	commands map[string]Command
}

// NewCommandRegistry creates an empty registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]Command)}
}

// Register adds a command, replacing any previous one with the same token
func (r *CommandRegistry) Register(cmd Command) {
	if _, exists := r.commands[cmd.Token]; !exists {
		r.order = append(r.order, cmd.Token)
	}
	r.commands[cmd.Token] = cmd
}

// Commands returns all commands in registration order
func (r *CommandRegistry) Commands() []Command {
	result := make([]Command, 0, len(r.order))
	for _, token := range r.order {
		result = append(result, r.commands[token])
	}
	return result
}

// Handle matches the first whitespace-delimited word of the message
// against the registry. Matching is case-sensitive and only words
// starting with a slash are considered. It reports whether a command
// matched and was handled.
func (r *CommandRegistry) Handle(e *Engine, user *domain.User, msg Message) bool {
	token, _, _ := strings.Cut(strings.TrimSpace(msg.Text), " ")
	if !strings.HasPrefix(token, "/") {
		return false
	}

	cmd, exists := r.commands[token]
	if !exists {
		return false
	}
	return cmd.Handler(e, user, msg)
}

// defaultCommands returns the registry with the built-in commands
func defaultCommands() *CommandRegistry {
	r := NewCommandRegistry()

	r.Register(Command{
		Token:       "/start",
		Description: "Начать работу с ботом",
		Handler: func(e *Engine, user *domain.User, _ Message) bool {
			e.sendText(user, "Привет! Я помогу перевести текст и озвучить перевод.\n\n"+
				"Команда /translate начнёт перевод, /help покажет список команд.")
			return true
		},
	})

	r.Register(Command{
		Token:       "/help",
		Description: "Список команд",
		Handler: func(e *Engine, user *domain.User, _ Message) bool {
			var sb strings.Builder
			sb.WriteString("Доступные команды:\n")
			for _, cmd := range e.commands.Commands() {
				sb.WriteString("\n")
				sb.WriteString(cmd.Token)
				sb.WriteString(" — ")
				sb.WriteString(cmd.Description)
			}
			e.sendText(user, sb.String())
			return true
		},
	})

	r.Register(Command{
		Token:       "/translate",
		Description: "Перевести текст",
		Handler: func(e *Engine, user *domain.User, _ Message) bool {
			pairs := domain.LanguagePairs()
			buttons := make([]Button, 0, len(pairs))
			for _, pair := range pairs {
				buttons = append(buttons, Button{
					Label: pair.String(),
					Data:  FormatPayload(ActionSelectLanguage, pair.String()),
				})
			}
			e.sendKeyboard(user, "Выберите языковую пару", BuildKeyboard(buttons, 2))
			return true
		},
	})

	return r
}
