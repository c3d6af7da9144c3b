package transcriber

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/subpoint/internal/logger"
)

type implWhisper struct {
	cli    *openai.Client
	model  string
	logger logger.Logger
}

// NewWhisper creates a Transcriber backed by the OpenAI audio transcription
// API. baseURL may be empty for the default endpoint; model defaults to
// whisper-1.
func NewWhisper(apiKey, baseURL, model string, log logger.Logger) (Transcriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required for speech recognition")
	}
	if model == "" {
		model = openai.Whisper1
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &implWhisper{
		cli:    openai.NewClientWithConfig(cfg),
		model:  model,
		logger: log,
	}, nil
}

// Recognize transcribes one audio file. The verbose JSON response format is
// requested so timed segments come back alongside the full text.
func (t *implWhisper) Recognize(ctx context.Context, audioPath, language string) (*Result, error) {
	t.logger.Info(ctx, "Transcribing audio with %s (this may take a while): %s", t.model, audioPath)

	resp, err := t.cli.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Language: language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("create transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, fmt.Errorf("transcription produced no text")
	}

	segments := make([]Segment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		segments = append(segments, Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
		})
	}

	t.logger.Info(ctx, "Transcription completed, detected language: %s", resp.Language)

	return &Result{
		Text:     text,
		Language: resp.Language,
		Segments: segments,
	}, nil
}
