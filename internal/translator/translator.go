package translator

import (
	"context"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

// Gateway defines the translation and speech-synthesis operations the
// bot delegates to a cloud provider
type Gateway interface {
	// Translate translates text from source to target language
	Translate(ctx context.Context, source, target domain.Language, text string) (string, error)
	// Speech synthesizes spoken audio for text in the given language
	Speech(ctx context.Context, language domain.Language, text string) ([]byte, error)
}
