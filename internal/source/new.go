package source

import (
	"github.com/nguyentantai21042004/subpoint/internal/logger"
	"github.com/nguyentantai21042004/subpoint/pkg/executor"
)

// Options controls how the yt-dlp source invokes the binary.
type Options struct {
	CookiesFromBrowser string // browser name, empty disables cookie loading
	AudioFormat        string
	AudioQuality       string
}

type implSource struct {
	executor executor.Executor
	logger   logger.Logger
	opts     Options
}

// New creates a Source backed by the yt-dlp binary.
func New(exec executor.Executor, log logger.Logger, opts Options) Source {
	if opts.AudioFormat == "" {
		opts.AudioFormat = "mp3"
	}
	if opts.AudioQuality == "" {
		opts.AudioQuality = "192"
	}
	return &implSource{
		executor: exec,
		logger:   log,
		opts:     opts,
	}
}
