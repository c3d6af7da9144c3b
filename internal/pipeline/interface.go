package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/subpoint/internal/summarizer"
	"github.com/nguyentantai21042004/subpoint/internal/transcript"
)

// Options fixes the per-run behavior of the pipeline.
type Options struct {
	OutputDir        string
	SubtitleLang     string // wanted caption language
	ForceRecognition bool   // ignore captions, always recognize
	SkipSummary      bool
	Summary          summarizer.Options
}

// Outcome collects the artifacts produced for one video.
type Outcome struct {
	Title           string
	AudioPath       string
	TranscriptPath  string
	TimestampedPath string
	SummaryPath     string
	Provenance      transcript.Provenance
}

// Pipeline processes one video per call: metadata, audio, transcript,
// summary, in that order, honoring cancellation between stages.
type Pipeline interface {
	// Process handles a video URL. An empty ref is resolved to the
	// newest video of the configured channel.
	Process(ctx context.Context, ref string) (*Outcome, error)

	// ProcessLocal handles a local audio or subtitle file dropped into
	// the watch directory, running the transcript and summary stages.
	ProcessLocal(ctx context.Context, path string) (*Outcome, error)
}
