package transcript

import "github.com/nguyentantai21042004/subpoint/internal/source"

// ChoiceKind is the closed outcome set of caption availability.
type ChoiceKind int

const (
	ChoiceNone ChoiceKind = iota
	ChoiceManual
	ChoiceAuto
)

func (k ChoiceKind) String() string {
	switch k {
	case ChoiceManual:
		return "manual"
	case ChoiceAuto:
		return "auto"
	default:
		return "none"
	}
}

// Choice is the selected caption track for a requested language, or none.
type Choice struct {
	Kind  ChoiceKind
	Track source.Track
}

// ChooseCaption picks the caption track for wantedLang. Human-authored
// tracks always outrank auto-generated ones for the same language. No
// cross-language substitution happens here; callers surface
// md.CaptionLanguages() to the user instead.
func ChooseCaption(md *source.Metadata, wantedLang string) Choice {
	if track, ok := md.ManualCaptions[wantedLang]; ok {
		return Choice{Kind: ChoiceManual, Track: track}
	}
	if track, ok := md.AutoCaptions[wantedLang]; ok {
		return Choice{Kind: ChoiceAuto, Track: track}
	}
	return Choice{Kind: ChoiceNone}
}
