package summarizer

import "context"

// Completer is the language-model completion capability. Implementations
// wrap one provider; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Options tunes one summarization call. Zero values fall back to the
// defaults in DefaultOptions.
type Options struct {
	Language       string // "zh" or "en"
	MaxDirectChars int    // above this the long-document path is used
	ChunkChars     int    // per-chunk character budget
	MaxConcurrent  int    // bound on concurrent per-chunk calls
}

// DefaultOptions mirror the configuration defaults.
func DefaultOptions() Options {
	return Options{
		Language:       "zh",
		MaxDirectChars: 100000,
		ChunkChars:     80000,
		MaxConcurrent:  1,
	}
}

// Summarizer produces the structured summary document for a transcript.
type Summarizer interface {
	// Summarize returns the structured summary of text.
	Summarize(ctx context.Context, text string, opts Options) (string, error)

	// SummarizeFile summarizes a transcript file and writes the summary
	// next to it in outputDir, returning the summary path. An existing
	// summary file is returned without a model call.
	SummarizeFile(ctx context.Context, path, outputDir string, opts Options) (string, error)
}
