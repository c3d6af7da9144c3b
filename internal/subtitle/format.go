package subtitle

import (
	"path/filepath"
	"strings"
)

// Format identifies the markup of a raw caption track.
type Format int

const (
	FormatOther Format = iota
	FormatVTT
	FormatSRT
)

func (f Format) String() string {
	switch f {
	case FormatVTT:
		return "vtt"
	case FormatSRT:
		return "srt"
	default:
		return "other"
	}
}

// DetectFormat decides the caption format from a file name or extension.
// Anything that is not .vtt or .srt is treated as opaque.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".vtt":
		return FormatVTT
	case ".srt":
		return FormatSRT
	default:
		return FormatOther
	}
}
