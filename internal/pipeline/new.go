package pipeline

import (
	"github.com/nguyentantai21042004/subpoint/internal/logger"
	"github.com/nguyentantai21042004/subpoint/internal/notify"
	"github.com/nguyentantai21042004/subpoint/internal/source"
	"github.com/nguyentantai21042004/subpoint/internal/summarizer"
	"github.com/nguyentantai21042004/subpoint/internal/transcript"
)

type implPipeline struct {
	source     source.Source
	resolver   transcript.Resolver
	summarizer summarizer.Summarizer
	notifier   notify.Notifier
	channelURL string
	logger     logger.Logger
	opts       Options
}

// New creates a Pipeline over the injected capabilities. channelURL may be
// empty; it is only needed when Process is called without a video ref.
func New(src source.Source, resolver transcript.Resolver, sum summarizer.Summarizer, notifier notify.Notifier, channelURL string, log logger.Logger, opts Options) Pipeline {
	return &implPipeline{
		source:     src,
		resolver:   resolver,
		summarizer: sum,
		notifier:   notifier,
		channelURL: channelURL,
		logger:     log,
		opts:       opts,
	}
}
