package transcriber

import "context"

// Segment is one timed span of recognized speech.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result is the full recognition output for one audio file.
type Result struct {
	Text     string
	Language string
	Segments []Segment
}

// Transcriber is the speech-recognition capability. language may be empty
// to let the model detect it.
type Transcriber interface {
	Recognize(ctx context.Context, audioPath, language string) (*Result, error)
}
