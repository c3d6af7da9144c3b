package transcript

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/subpoint/internal/logger"
	"github.com/nguyentantai21042004/subpoint/internal/source"
	"github.com/nguyentantai21042004/subpoint/internal/transcriber"
)

type fakeCaptions struct {
	calls int
	raw   string
	path  string
	err   error
}

func (f *fakeCaptions) FetchCaption(ctx context.Context, url string, md *source.Metadata, track source.Track, manual bool, dir string) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return f.raw, f.path, nil
}

type fakeTranscriber struct {
	calls  int
	result *transcriber.Result
	err    error
}

func (f *fakeTranscriber) Recognize(ctx context.Context, audioPath, language string) (*transcriber.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

const testVTT = "WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nHello world\n\n00:00:02.000 --> 00:00:04.000\nHello world\n\n00:00:04.000 --> 00:00:06.000\nGoodbye\n"

func testRequest(t *testing.T, choice Choice, force bool) Request {
	t.Helper()
	return Request{
		URL:              "https://example.com/watch?v=abc",
		Metadata:         &source.Metadata{Title: "test video"},
		AudioPath:        "test video.mp3",
		Choice:           choice,
		ForceRecognition: force,
		OutputDir:        t.TempDir(),
	}
}

func TestResolveManualCaption(t *testing.T) {
	captions := &fakeCaptions{raw: testVTT, path: "test video.en.vtt"}
	rec := &fakeTranscriber{}
	resolver := New(captions, rec, logger.New("error"))

	req := testRequest(t, Choice{Kind: ChoiceManual, Track: source.Track{Lang: "en", Ext: "vtt"}}, false)
	res, err := resolver.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if res.Text != "Hello world Goodbye" {
		t.Errorf("Text = %q, want %q", res.Text, "Hello world Goodbye")
	}
	if res.Provenance != ProvenanceManualCaption {
		t.Errorf("Provenance = %v, want manual-caption", res.Provenance)
	}
	if rec.calls != 0 {
		t.Errorf("transcriber called %d times, want 0", rec.calls)
	}

	data, err := os.ReadFile(filepath.Join(req.OutputDir, "test video_transcript.txt"))
	if err != nil {
		t.Fatalf("transcript file not written: %v", err)
	}
	if string(data) != res.Text {
		t.Errorf("persisted transcript = %q, want %q", string(data), res.Text)
	}
}

func TestResolveForceRecognition(t *testing.T) {
	captions := &fakeCaptions{raw: testVTT, path: "test video.en.vtt"}
	rec := &fakeTranscriber{result: &transcriber.Result{
		Text: "recognized text",
		Segments: []transcriber.Segment{
			{Start: 0, End: 2.5, Text: "recognized"},
			{Start: 2.5, End: 4, Text: "text"},
		},
	}}
	resolver := New(captions, rec, logger.New("error"))

	req := testRequest(t, Choice{Kind: ChoiceManual, Track: source.Track{Lang: "en"}}, true)
	res, err := resolver.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if captions.calls != 0 {
		t.Errorf("caption fetch called %d times, want 0", captions.calls)
	}
	if rec.calls != 1 {
		t.Errorf("transcriber called %d times, want 1", rec.calls)
	}
	if res.Provenance != ProvenanceRecognition {
		t.Errorf("Provenance = %v, want speech-recognition", res.Provenance)
	}
	if res.TimestampedPath == "" {
		t.Error("expected timestamped transcript to be written")
	}
}

func TestResolveNoCaptionUsesRecognition(t *testing.T) {
	rec := &fakeTranscriber{result: &transcriber.Result{Text: "from audio"}}
	resolver := New(&fakeCaptions{}, rec, logger.New("error"))

	res, err := resolver.Resolve(context.Background(), testRequest(t, Choice{Kind: ChoiceNone}, false))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rec.calls != 1 {
		t.Errorf("transcriber called %d times, want 1", rec.calls)
	}
	if res.Text != "from audio" {
		t.Errorf("Text = %q, want %q", res.Text, "from audio")
	}
}

func TestResolveCaptionFetchFallsBack(t *testing.T) {
	captions := &fakeCaptions{err: errors.New("network down")}
	rec := &fakeTranscriber{result: &transcriber.Result{Text: "fallback text"}}
	resolver := New(captions, rec, logger.New("error"))

	req := testRequest(t, Choice{Kind: ChoiceAuto, Track: source.Track{Lang: "en"}}, false)
	res, err := resolver.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if captions.calls != 1 {
		t.Errorf("caption fetch called %d times, want 1", captions.calls)
	}
	if rec.calls != 1 {
		t.Errorf("transcriber called %d times, want 1", rec.calls)
	}
	if res.Provenance != ProvenanceRecognition {
		t.Errorf("Provenance = %v, want speech-recognition", res.Provenance)
	}
}

func TestResolveEmptyCaptionFallsBack(t *testing.T) {
	// Track is advertised but normalizes to nothing.
	captions := &fakeCaptions{raw: "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\n\n", path: "t.vtt"}
	rec := &fakeTranscriber{result: &transcriber.Result{Text: "rescued"}}
	resolver := New(captions, rec, logger.New("error"))

	res, err := resolver.Resolve(context.Background(), testRequest(t, Choice{Kind: ChoiceAuto, Track: source.Track{Lang: "en"}}, false))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Text != "rescued" {
		t.Errorf("Text = %q, want %q", res.Text, "rescued")
	}
}

func TestResolveRecognitionFailurePropagates(t *testing.T) {
	rec := &fakeTranscriber{err: errors.New("model unavailable")}
	resolver := New(&fakeCaptions{}, rec, logger.New("error"))

	_, err := resolver.Resolve(context.Background(), testRequest(t, Choice{Kind: ChoiceNone}, false))
	if err == nil {
		t.Fatal("Resolve() should propagate recognition failure")
	}
}

func TestResolveCacheShortCircuit(t *testing.T) {
	captions := &fakeCaptions{raw: testVTT, path: "t.vtt"}
	rec := &fakeTranscriber{result: &transcriber.Result{Text: "unused"}}
	resolver := New(captions, rec, logger.New("error"))

	req := testRequest(t, Choice{Kind: ChoiceManual, Track: source.Track{Lang: "en"}}, false)
	cached := filepath.Join(req.OutputDir, "test video_transcript.txt")
	if err := os.WriteFile(cached, []byte("existing transcript"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := resolver.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !res.Cached {
		t.Error("expected cached result")
	}
	if res.Text != "existing transcript" {
		t.Errorf("Text = %q, want existing artifact", res.Text)
	}
	if captions.calls != 0 || rec.calls != 0 {
		t.Errorf("cache hit still did work: captions=%d transcriber=%d", captions.calls, rec.calls)
	}
}

func TestResolveEmptyArtifactIsNotCached(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero-byte artifact", ""},
		{"whitespace-only artifact", "  \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captions := &fakeCaptions{raw: testVTT, path: "test video.en.vtt"}
			rec := &fakeTranscriber{}
			resolver := New(captions, rec, logger.New("error"))

			req := testRequest(t, Choice{Kind: ChoiceManual, Track: source.Track{Lang: "en"}}, false)
			stale := filepath.Join(req.OutputDir, "test video_transcript.txt")
			if err := os.WriteFile(stale, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			res, err := resolver.Resolve(context.Background(), req)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if res.Cached {
				t.Error("empty artifact must not count as a cache hit")
			}
			if res.Text == "" {
				t.Error("Resolve() returned empty Text")
			}
			if captions.calls != 1 {
				t.Errorf("caption fetch called %d times, want 1", captions.calls)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{62.8, "01:02"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
	}
	for _, tt := range tests {
		if got := formatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
