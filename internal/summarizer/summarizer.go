package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"
)

// ErrEmptyTranscript marks an empty input to summarization. It is a
// precondition violation, never absorbed into a vacuous summary.
var ErrEmptyTranscript = errors.New("transcript is empty")

// Summarize produces the structured summary. Short texts take one direct
// pass with the full template; longer texts are partitioned into chunks,
// summarized independently, and recombined with one integration pass.
func (s *implSummarizer) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyTranscript
	}
	opts = withDefaults(opts)

	if utf8.RuneCountInString(text) <= opts.MaxDirectChars {
		s.logger.Info(ctx, "Generating summary (%s, direct pass)", opts.Language)
		out, err := s.completer.Complete(ctx, directSystem(opts.Language), structuredPrompt(opts.Language, text))
		if err != nil {
			return "", fmt.Errorf("summarize: %w", err)
		}
		return out, nil
	}

	return s.summarizeLong(ctx, text, opts)
}

// summarizeLong is the long-document path: chunk, summarize each chunk with
// the lightweight key-point prompt, then integrate. Chunk calls may run
// concurrently up to MaxConcurrent; output order always follows input
// order, and the first failure fails the whole operation.
func (s *implSummarizer) summarizeLong(ctx context.Context, text string, opts Options) (string, error) {
	chunks := splitChunks(text, opts.ChunkChars)
	s.logger.Info(ctx, "Content too long for a direct pass, summarizing %d chunks", len(chunks))

	summaries := make([]string, len(chunks))

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := newSemaphore(opts.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i, chunk := range chunks {
		if err := sem.acquire(cctx); err != nil {
			fail(err)
			break
		}

		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			defer sem.release()

			s.logger.Info(cctx, "Summarizing chunk %d/%d", i+1, len(chunks))
			out, err := s.completer.Complete(cctx, chunkSystem(opts.Language), chunkPrompt(opts.Language, chunk))
			if err != nil {
				fail(fmt.Errorf("summarize chunk %d: %w", i+1, err))
				return
			}
			summaries[i] = out
		}(i, chunk)
	}

	wg.Wait()
	if firstErr != nil {
		return "", firstErr
	}

	s.logger.Info(ctx, "Integrating %d chunk summaries", len(summaries))

	parts := make([]string, len(summaries))
	for i, summary := range summaries {
		parts[i] = partLabel(opts.Language, i+1) + "\n" + summary
	}
	combined := strings.Join(parts, "\n\n---\n\n")

	out, err := s.completer.Complete(ctx, integrationSystem(opts.Language), structuredPrompt(opts.Language, combined))
	if err != nil {
		return "", fmt.Errorf("integrate chunk summaries: %w", err)
	}
	return out, nil
}

// SummarizeFile reads a transcript file, summarizes it, and persists the
// summary as markdown (plus docx when enabled). An existing summary file
// short-circuits: re-runs must not re-summarize.
func (s *implSummarizer) SummarizeFile(ctx context.Context, path, outputDir string, opts Options) (string, error) {
	outPath := summaryPath(path, outputDir)
	if _, err := os.Stat(outPath); err == nil {
		s.logger.Info(ctx, "Summary already exists, skipping: %s", filepath.Base(outPath))
		return outPath, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	s.logger.Info(ctx, "Summarizing %s (%d characters)", filepath.Base(path), utf8.RuneCount(data))

	summary, err := s.Summarize(ctx, string(data), opts)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outPath, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	s.logger.Info(ctx, "Summary saved: %s", filepath.Base(outPath))

	if s.docx {
		docxPath := strings.TrimSuffix(outPath, ".md") + ".docx"
		title := strings.TrimSuffix(filepath.Base(docxPath), ".docx")
		if err := renderDocx(title, summary, docxPath); err != nil {
			s.logger.Warn(ctx, "Failed to render docx summary: %v", err)
		} else {
			s.logger.Info(ctx, "Docx summary saved: %s", filepath.Base(docxPath))
		}
	}

	return outPath, nil
}

// summaryPath derives the summary file name from the transcript name, so
// "Title_transcript.txt" becomes "Title_summary.md".
func summaryPath(transcriptPath, outputDir string) string {
	base := filepath.Base(transcriptPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.TrimSuffix(stem, "_transcript")
	return filepath.Join(outputDir, stem+"_summary.md")
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Language == "" {
		opts.Language = def.Language
	}
	if opts.MaxDirectChars <= 0 {
		opts.MaxDirectChars = def.MaxDirectChars
	}
	if opts.ChunkChars <= 0 {
		opts.ChunkChars = def.ChunkChars
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = def.MaxConcurrent
	}
	return opts
}
