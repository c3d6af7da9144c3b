package source

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "My Video", "My Video"},
		{"invalid characters removed", `What? A "Test": <Part 1/2>`, "What A Test Part 12"},
		{"whitespace collapsed", "too   many\t spaces ", "too many spaces"},
		{"empty becomes untitled", "", "untitled"},
		{"only invalid becomes untitled", `<>:"/\|?*`, "untitled"},
		{"long title capped", strings.Repeat("a", 150), strings.Repeat("a", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.title); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestParseVideoJSON(t *testing.T) {
	out := `{
		"id": "abc123",
		"title": "Sample Video",
		"channel": "Sample Channel",
		"duration": 125.4,
		"upload_date": "20260815",
		"subtitles": {
			"en": [{"ext": "vtt", "url": "https://example.com/en.vtt"}]
		},
		"automatic_captions": {
			"en": [
				{"ext": "json3", "url": "https://example.com/en.json3"},
				{"ext": "srt", "url": "https://example.com/en.srt"},
				{"ext": "vtt", "url": "https://example.com/en.vtt"}
			],
			"zh": [{"ext": "vtt", "url": "https://example.com/zh.vtt"}]
		}
	}`

	video, err := parseVideoJSON(out)
	if err != nil {
		t.Fatalf("parseVideoJSON() error = %v", err)
	}

	md := video.toMetadata()
	if md.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", md.ID)
	}
	if md.Duration != 125 {
		t.Errorf("Duration = %d, want 125", md.Duration)
	}
	if got := md.ManualCaptions["en"].Ext; got != "vtt" {
		t.Errorf("manual en ext = %q, want vtt", got)
	}
	// srt is preferred over vtt and json3 for the same language.
	if got := md.AutoCaptions["en"].Ext; got != "srt" {
		t.Errorf("auto en ext = %q, want srt", got)
	}

	langs := md.CaptionLanguages()
	want := []string{"en", "zh"}
	if len(langs) != len(want) {
		t.Fatalf("CaptionLanguages() = %v, want %v", langs, want)
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("CaptionLanguages()[%d] = %q, want %q", i, langs[i], want[i])
		}
	}
}

func TestParseVideoJSONInvalid(t *testing.T) {
	if _, err := parseVideoJSON(""); err == nil {
		t.Error("parseVideoJSON should fail on empty output")
	}
	if _, err := parseVideoJSON("WARNING: not json"); err == nil {
		t.Error("parseVideoJSON should fail on non-JSON output")
	}
}

func TestToMetadataFallbacks(t *testing.T) {
	video := &ytdlpVideo{Uploader: "Uploader Name"}
	md := video.toMetadata()
	if md.Title != "unknown" {
		t.Errorf("Title = %q, want unknown", md.Title)
	}
	if md.Channel != "Uploader Name" {
		t.Errorf("Channel = %q, want uploader fallback", md.Channel)
	}
	if len(md.CaptionLanguages()) != 0 {
		t.Errorf("CaptionLanguages() should be empty, got %v", md.CaptionLanguages())
	}
}
