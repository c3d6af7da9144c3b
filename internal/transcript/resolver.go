package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/subpoint/internal/subtitle"
)

// ErrCaptionFetch marks a caption track that was advertised in metadata but
// could not be turned into usable text. The resolver absorbs it by falling
// back to speech recognition.
var ErrCaptionFetch = errors.New("caption fetch failed")

// Resolve runs the transcript decision chain for one video:
//
//	force recognition        -> recognize
//	manual or auto caption   -> use caption, recognize on fetch failure
//	no caption               -> recognize
//
// An existing transcript artifact for the audio file short-circuits all of
// it: re-running the pipeline must not re-fetch or re-transcribe.
func (r *implResolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	stem := audioStem(req.AudioPath)
	path := filepath.Join(req.OutputDir, stem+"_transcript.txt")

	if data, err := os.ReadFile(path); err == nil {
		// A transcript is never empty; a zero-byte artifact is a failed
		// earlier run and must not short-circuit resolution.
		if text := strings.TrimSpace(string(data)); text != "" {
			r.logger.Info(ctx, "Transcript already exists, skipping: %s", filepath.Base(path))
			return &Result{
				Text:       text,
				Provenance: r.plannedProvenance(req),
				Path:       path,
				Cached:     true,
			}, nil
		}
		r.logger.Warn(ctx, "Existing transcript is empty, re-resolving: %s", filepath.Base(path))
	}

	if !req.ForceRecognition && req.Choice.Kind != ChoiceNone {
		res, err := r.fromCaption(ctx, req, path)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrCaptionFetch) {
			return nil, err
		}
		r.logger.Warn(ctx, "Falling back to speech recognition: %v", err)
	}

	return r.recognize(ctx, req, path, stem)
}

// fromCaption fetches the chosen track, normalizes it to plain text, and
// persists the transcript. Every fetch or normalization problem is reported
// as ErrCaptionFetch so the caller can fall back.
func (r *implResolver) fromCaption(ctx context.Context, req Request, path string) (*Result, error) {
	manual := req.Choice.Kind == ChoiceManual

	raw, captionPath, err := r.captions.FetchCaption(ctx, req.URL, req.Metadata, req.Choice.Track, manual, req.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptionFetch, err)
	}

	format := subtitle.DetectFormat(captionPath)
	text := strings.TrimSpace(subtitle.Normalize(raw, format))
	if text == "" {
		return nil, fmt.Errorf("%w: %s track normalized to empty text", ErrCaptionFetch, format)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}

	provenance := ProvenanceAutoCaption
	if manual {
		provenance = ProvenanceManualCaption
	}

	r.logger.Info(ctx, "Caption converted to transcript (%s): %s", provenance, filepath.Base(path))

	return &Result{
		Text:       text,
		Provenance: provenance,
		Path:       path,
	}, nil
}

// recognize is the terminal fallback; its failures propagate.
func (r *implResolver) recognize(ctx context.Context, req Request, path, stem string) (*Result, error) {
	r.logger.Info(ctx, "Using speech recognition for: %s", filepath.Base(req.AudioPath))

	rec, err := r.transcriber.Recognize(ctx, req.AudioPath, req.Language)
	if err != nil {
		return nil, fmt.Errorf("speech recognition: %w", err)
	}

	text := strings.TrimSpace(rec.Text)
	if text == "" {
		return nil, fmt.Errorf("speech recognition: transcript is empty")
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}

	result := &Result{
		Text:       text,
		Provenance: ProvenanceRecognition,
		Segments:   rec.Segments,
		Path:       path,
	}

	if len(rec.Segments) > 0 {
		tsPath := filepath.Join(req.OutputDir, stem+"_transcript_timestamped.txt")
		if err := os.WriteFile(tsPath, []byte(formatSegments(rec.Segments)), 0644); err != nil {
			r.logger.Warn(ctx, "Failed to write timestamped transcript: %v", err)
		} else {
			result.TimestampedPath = tsPath
			r.logger.Info(ctx, "Timestamped transcript saved: %s", filepath.Base(tsPath))
		}
	}

	r.logger.Info(ctx, "Transcription saved: %s", filepath.Base(path))
	return result, nil
}

// plannedProvenance reports what the resolver would have done, used to tag
// cache hits where the original provenance was not recorded.
func (r *implResolver) plannedProvenance(req Request) Provenance {
	if req.ForceRecognition {
		return ProvenanceRecognition
	}
	switch req.Choice.Kind {
	case ChoiceManual:
		return ProvenanceManualCaption
	case ChoiceAuto:
		return ProvenanceAutoCaption
	default:
		return ProvenanceRecognition
	}
}

func audioStem(audioPath string) string {
	base := filepath.Base(audioPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
