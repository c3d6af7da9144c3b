package source

import "sort"

// Track describes one caption track offered for a video.
type Track struct {
	Lang string
	Ext  string
	URL  string
}

// Metadata is the immutable snapshot of a video taken once per run.
// ManualCaptions and AutoCaptions map language codes to the preferred
// track for that language.
type Metadata struct {
	ID             string
	Title          string
	Channel        string
	Duration       int // seconds
	UploadDate     string
	ManualCaptions map[string]Track
	AutoCaptions   map[string]Track
}

// SafeTitle returns the title reduced to a stable filesystem name. All
// artifact paths for a video derive from it, which is what makes re-runs
// detectable.
func (m *Metadata) SafeTitle() string {
	return SanitizeTitle(m.Title)
}

// CaptionLanguages returns every language with any caption track, sorted
// so user-facing listings are deterministic.
func (m *Metadata) CaptionLanguages() []string {
	seen := make(map[string]bool)
	for lang := range m.ManualCaptions {
		seen[lang] = true
	}
	for lang := range m.AutoCaptions {
		seen[lang] = true
	}

	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
