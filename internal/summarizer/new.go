package summarizer

import (
	"github.com/nguyentantai21042004/subpoint/internal/logger"
)

type implSummarizer struct {
	completer Completer
	logger    logger.Logger
	docx      bool
}

// New creates a Summarizer over the given completion capability. When docx
// is set, SummarizeFile also renders a .docx copy of each summary.
func New(completer Completer, log logger.Logger, docx bool) Summarizer {
	return &implSummarizer{
		completer: completer,
		logger:    log,
		docx:      docx,
	}
}
