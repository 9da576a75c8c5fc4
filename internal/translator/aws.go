package translator

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/ozomaf/MyEnglishBot/internal/domain"
)

// pollyVoices maps a language to the Polly voice used for synthesis
var pollyVoices = map[domain.Language]pollytypes.VoiceId{
	domain.RU: pollytypes.VoiceIdTatyana,
	domain.EN: pollytypes.VoiceIdJoanna,
}

// AWS implements Gateway on top of AWS Translate and AWS Polly
type AWS struct {
	translateClient *translate.Client
	pollyClient     *polly.Client
}

// NewAWS creates a gateway with clients configured for the given region
func NewAWS(ctx context.Context, region string) (*AWS, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWS{
		translateClient: translate.NewFromConfig(cfg),
		pollyClient:     polly.NewFromConfig(cfg),
	}, nil
}

// Translate translates text with AWS Translate
func (a *AWS) Translate(ctx context.Context, source, target domain.Language, text string) (string, error) {
	out, err := a.translateClient.TranslateText(ctx, &translate.TranslateTextInput{
		SourceLanguageCode: aws.String(source.Code()),
		TargetLanguageCode: aws.String(target.Code()),
		Text:               aws.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("failed to translate text: %w", err)
	}

	return aws.ToString(out.TranslatedText), nil
}

// Speech synthesizes speech with AWS Polly. Telegram voice messages
// require OGG audio, so synthesis uses the ogg_vorbis output format.
func (a *AWS) Speech(ctx context.Context, language domain.Language, text string) ([]byte, error) {
	voice, ok := pollyVoices[language]
	if !ok {
		return nil, fmt.Errorf("no voice configured for language %s", language)
	}

	out, err := a.pollyClient.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		OutputFormat: pollytypes.OutputFormatOggVorbis,
		Text:         aws.String(text),
		VoiceId:      voice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}

	return audio, nil
}
