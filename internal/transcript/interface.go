package transcript

import (
	"context"

	"github.com/nguyentantai21042004/subpoint/internal/source"
	"github.com/nguyentantai21042004/subpoint/internal/transcriber"
)

// Provenance records how a transcript's text was obtained.
type Provenance int

const (
	ProvenanceManualCaption Provenance = iota
	ProvenanceAutoCaption
	ProvenanceRecognition
)

func (p Provenance) String() string {
	switch p {
	case ProvenanceManualCaption:
		return "manual-caption"
	case ProvenanceAutoCaption:
		return "auto-caption"
	default:
		return "speech-recognition"
	}
}

// Request carries everything the resolver needs for one video.
type Request struct {
	URL              string
	Metadata         *source.Metadata
	AudioPath        string
	Choice           Choice
	ForceRecognition bool
	Language         string // recognition language hint, empty = detect
	OutputDir        string
}

// Result is the resolved transcript. Text is never empty. Segments is only
// populated on the recognition path. Cached marks a durable artifact that
// was returned without any caption fetch or recognition work.
type Result struct {
	Text            string
	Provenance      Provenance
	Segments        []transcriber.Segment
	Path            string
	TimestampedPath string
	Cached          bool
}

// Resolver turns a video's audio and caption availability into a plain-text
// transcript, persisting it under the output directory.
type Resolver interface {
	Resolve(ctx context.Context, req Request) (*Result, error)
}

// CaptionFetcher is the slice of the video source the resolver needs.
type CaptionFetcher interface {
	FetchCaption(ctx context.Context, url string, md *source.Metadata, track source.Track, manual bool, dir string) (string, string, error)
}
