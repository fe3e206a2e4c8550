package speech

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/nutrobots/nutrobot-go/config"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrNoSpeech means the audio produced no usable transcript.
var ErrNoSpeech = errors.New("no speech recognized")

// Interfaces
type Recognizer interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type Transcriber interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// Implementation
type RecognizerImpl struct {
	client Transcriber
	cfg    config.SpeechConfig
	log    *zap.Logger
}

// Constructor
func NewRecognizer(apiKey string, cfg config.SpeechConfig, log *zap.Logger) Recognizer {
	return NewRecognizerWithClient(openai.NewClient(apiKey), cfg, log)
}

func NewRecognizerWithClient(client Transcriber, cfg config.SpeechConfig, log *zap.Logger) Recognizer {
	if cfg.Model == "" {
		cfg.Model = openai.Whisper1
	}
	return &RecognizerImpl{client: client, cfg: cfg, log: log}
}

// Transcribe converts a voice note into text for the meal pipeline.
func (r *RecognizerImpl) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := r.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    r.cfg.Model,
		Reader:   audio,
		FilePath: filename,
	})
	if err != nil {
		r.log.Warn("transcription failed", zap.Error(err))
		return "", err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}
