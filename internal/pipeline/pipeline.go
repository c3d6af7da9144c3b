package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/subpoint/internal/transcript"
)

const skippedSummaryNote = "# Summary skipped\n\nAI summarization was skipped for this run.\n"

// Process runs the full pipeline for one video. Stages run strictly in
// sequence; cancellation is honored between them.
func (p *implPipeline) Process(ctx context.Context, ref string) (*Outcome, error) {
	startTime := time.Now()

	if ref == "" {
		if p.channelURL == "" {
			return nil, fmt.Errorf("no video url given and no channel_url configured")
		}
		latest, err := p.source.LatestFromChannel(ctx, p.channelURL)
		if err != nil {
			return nil, fmt.Errorf("resolve latest channel video: %w", err)
		}
		ref = latest
	}

	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	// Step 1: metadata.
	p.logger.Info(ctx, "Step 1/4: Fetching video info")
	md, err := p.source.FetchMetadata(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	p.logger.Info(ctx, "Title: %s", md.Title)
	p.logger.Info(ctx, "Channel: %s", md.Channel)
	p.logger.Info(ctx, "Duration: %dm%ds", md.Duration/60, md.Duration%60)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 2: audio.
	p.logger.Info(ctx, "Step 2/4: Downloading audio")
	audioPath, err := p.source.FetchAudio(ctx, ref, md, p.opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("fetch audio: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 3: transcript.
	p.logger.Info(ctx, "Step 3/4: Resolving transcript")
	choice := transcript.ChooseCaption(md, p.opts.SubtitleLang)
	if choice.Kind == transcript.ChoiceNone {
		if langs := md.CaptionLanguages(); len(langs) > 0 {
			p.logger.Warn(ctx, "No %s captions, available languages: %s",
				p.opts.SubtitleLang, strings.Join(langs, ", "))
		} else {
			p.logger.Warn(ctx, "Video has no captions at all")
		}
	}

	res, err := p.resolver.Resolve(ctx, transcript.Request{
		URL:              ref,
		Metadata:         md,
		AudioPath:        audioPath,
		Choice:           choice,
		ForceRecognition: p.opts.ForceRecognition,
		Language:         p.opts.SubtitleLang,
		OutputDir:        p.opts.OutputDir,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve transcript: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 4: summary.
	outcome := &Outcome{
		Title:           md.Title,
		AudioPath:       audioPath,
		TranscriptPath:  res.Path,
		TimestampedPath: res.TimestampedPath,
		Provenance:      res.Provenance,
	}

	if p.opts.SkipSummary {
		p.logger.Info(ctx, "Step 4/4: Skipping AI summary")
		outcome.SummaryPath, err = p.writeSkippedSummary(res.Path)
		if err != nil {
			return nil, err
		}
	} else {
		p.logger.Info(ctx, "Step 4/4: Generating AI summary")
		outcome.SummaryPath, err = p.summarizer.SummarizeFile(ctx, res.Path, p.opts.OutputDir, p.opts.Summary)
		if err != nil {
			return nil, fmt.Errorf("summarize transcript: %w", err)
		}
	}

	p.logResults(ctx, outcome, time.Since(startTime))
	p.notifier.Send(ctx, "SubPoint", fmt.Sprintf("Finished processing: %s", clipTitle(md.Title)))

	return outcome, nil
}

func (p *implPipeline) writeSkippedSummary(transcriptPath string) (string, error) {
	base := filepath.Base(transcriptPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.TrimSuffix(stem, "_transcript")

	path := filepath.Join(p.opts.OutputDir, stem+"_summary.md")
	if err := os.WriteFile(path, []byte(skippedSummaryNote), 0644); err != nil {
		return "", fmt.Errorf("write skipped summary note: %w", err)
	}
	return path, nil
}

func clipTitle(title string) string {
	if runes := []rune(title); len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	return title
}
