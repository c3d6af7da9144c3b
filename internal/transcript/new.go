package transcript

import (
	"github.com/nguyentantai21042004/subpoint/internal/logger"
	"github.com/nguyentantai21042004/subpoint/internal/transcriber"
)

type implResolver struct {
	captions    CaptionFetcher
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a Resolver wired to the given caption fetcher and speech
// recognizer.
func New(captions CaptionFetcher, rec transcriber.Transcriber, log logger.Logger) Resolver {
	return &implResolver{
		captions:    captions,
		transcriber: rec,
		logger:      log,
	}
}
