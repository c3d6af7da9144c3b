package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// logResults prints the closing summary block of a run.
func (p *implPipeline) logResults(ctx context.Context, outcome *Outcome, elapsed time.Duration) {
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed: %s", outcome.Title)
	p.logger.Info(ctx, "Transcript source: %s", outcome.Provenance)
	p.logger.Info(ctx, "Audio:      %s (%s)", filepath.Base(outcome.AudioPath), fileSize(outcome.AudioPath))
	p.logger.Info(ctx, "Transcript: %s (%s)", filepath.Base(outcome.TranscriptPath), fileSize(outcome.TranscriptPath))
	if outcome.TimestampedPath != "" {
		p.logger.Info(ctx, "Timestamps: %s (%s)", filepath.Base(outcome.TimestampedPath), fileSize(outcome.TimestampedPath))
	}
	p.logger.Info(ctx, "Summary:    %s (%s)", filepath.Base(outcome.SummaryPath), fileSize(outcome.SummaryPath))
	p.logger.Info(ctx, "Output dir: %s", p.opts.OutputDir)
	p.logger.Info(ctx, "Processing time: %s", elapsed.Round(time.Second))
	p.logger.Info(ctx, "========================================")
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "N/A"
	}

	size := info.Size()
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
