package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/subpoint/internal/subtitle"
	"github.com/nguyentantai21042004/subpoint/internal/transcript"
)

// ProcessLocal handles a file dropped into the watch directory. Subtitle
// and text files go straight to normalization and summary; audio files go
// through speech recognition first.
func (p *implPipeline) ProcessLocal(ctx context.Context, path string) (*Outcome, error) {
	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	p.logger.Info(ctx, "Processing local file: %s", base)

	var outcome *Outcome
	var err error
	if isAudioFile(path) {
		outcome, err = p.localAudio(ctx, path)
	} else {
		outcome, err = p.localText(ctx, path, stem)
	}
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.opts.SkipSummary {
		outcome.SummaryPath, err = p.writeSkippedSummary(outcome.TranscriptPath)
		if err != nil {
			return nil, err
		}
	} else {
		outcome.SummaryPath, err = p.summarizer.SummarizeFile(ctx, outcome.TranscriptPath, p.opts.OutputDir, p.opts.Summary)
		if err != nil {
			return nil, fmt.Errorf("summarize transcript: %w", err)
		}
	}

	p.notifier.Send(ctx, "SubPoint", fmt.Sprintf("Finished processing: %s", clipTitle(stem)))
	return outcome, nil
}

// localAudio runs recognition on a dropped audio file. There are no
// captions to consider, so the resolver goes straight to its fallback.
func (p *implPipeline) localAudio(ctx context.Context, path string) (*Outcome, error) {
	res, err := p.resolver.Resolve(ctx, transcript.Request{
		AudioPath: path,
		Choice:    transcript.Choice{Kind: transcript.ChoiceNone},
		OutputDir: p.opts.OutputDir,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve transcript: %w", err)
	}

	return &Outcome{
		Title:           strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		AudioPath:       path,
		TranscriptPath:  res.Path,
		TimestampedPath: res.TimestampedPath,
		Provenance:      res.Provenance,
	}, nil
}

// localText normalizes a dropped subtitle or plain-text file into a
// transcript artifact.
func (p *implPipeline) localText(ctx context.Context, path, stem string) (*Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}

	format := subtitle.DetectFormat(path)
	text := strings.TrimSpace(subtitle.Normalize(string(data), format))
	if text == "" {
		return nil, fmt.Errorf("subtitle file normalized to empty text: %s", path)
	}

	transcriptPath := filepath.Join(p.opts.OutputDir, stem+"_transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}
	p.logger.Info(ctx, "Subtitle converted to transcript (%s): %s", format, filepath.Base(transcriptPath))

	// Provenance is a closed set. A dropped subtitle or text file was
	// supplied by the user, not recognized from audio, so it carries the
	// manual-caption tag.
	return &Outcome{
		Title:          stem,
		TranscriptPath: transcriptPath,
		Provenance:     transcript.ProvenanceManualCaption,
	}, nil
}

func isAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".m4a", ".wav", ".aac", ".flac", ".ogg", ".opus":
		return true
	}
	return false
}
