package subtitle

import (
	"regexp"
	"strings"
)

var (
	// Timing ranges: 00:01:02.345 --> 00:01:04.000 (VTT, dot milliseconds)
	// and 00:01:02,345 --> 00:01:04,000 (SRT, comma milliseconds). Cue
	// settings may follow the second timestamp.
	reVTTTiming = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}`)
	reSRTTiming = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}`)

	// Pure-numeric SRT cue index lines.
	reSRTIndex = regexp.MustCompile(`^\d+$`)

	// Inline markup: voice spans, styling, and the per-word timestamps
	// auto-generated tracks embed (<00:00:01.234><c> word</c>).
	reTag = regexp.MustCompile(`<[^>]+>`)
)

// Normalize converts raw caption text into one block of plain text.
// VTT and SRT markup is stripped, lines are trimmed, and consecutive
// duplicate lines are collapsed (the rolling-caption artifact of
// auto-generated tracks). Opaque formats pass through unchanged.
// Malformed input degrades to best-effort line extraction; Normalize
// never fails.
func Normalize(raw string, format Format) string {
	switch format {
	case FormatVTT:
		return extractText(stripVTTHeader(raw), reVTTTiming, nil)
	case FormatSRT:
		return extractText(raw, reSRTTiming, reSRTIndex)
	default:
		return raw
	}
}

// stripVTTHeader drops the WEBVTT header block up to and including the
// first blank line, so metadata lines like "Kind: captions" do not leak
// into the transcript.
func stripVTTHeader(raw string) string {
	trimmed := strings.TrimPrefix(raw, "\uFEFF")
	if !strings.HasPrefix(trimmed, "WEBVTT") {
		return raw
	}
	if i := strings.Index(trimmed, "\n\n"); i >= 0 {
		return trimmed[i+2:]
	}
	// No blank line after the header; drop the header line only.
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		return trimmed[i+1:]
	}
	return ""
}

// extractText keeps only dialogue lines, deduplicates immediate repeats,
// and joins the survivors with single spaces.
func extractText(raw string, timing, index *regexp.Regexp) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if timing != nil && timing.MatchString(line) {
			continue
		}
		if index != nil && index.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(reTag.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		if n := len(kept); n > 0 && kept[n-1] == line {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}
