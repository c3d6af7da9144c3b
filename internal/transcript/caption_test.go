package transcript

import (
	"testing"

	"github.com/nguyentantai21042004/subpoint/internal/source"
)

func TestChooseCaption(t *testing.T) {
	md := &source.Metadata{
		Title: "test",
		ManualCaptions: map[string]source.Track{
			"en": {Lang: "en", Ext: "vtt"},
		},
		AutoCaptions: map[string]source.Track{
			"en": {Lang: "en", Ext: "srt"},
			"zh": {Lang: "zh", Ext: "vtt"},
		},
	}

	tests := []struct {
		name   string
		wanted string
		kind   ChoiceKind
		ext    string
	}{
		{"manual outranks auto", "en", ChoiceManual, "vtt"},
		{"auto when no manual", "zh", ChoiceAuto, "vtt"},
		{"none for missing language", "ja", ChoiceNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice := ChooseCaption(md, tt.wanted)
			if choice.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", choice.Kind, tt.kind)
			}
			if choice.Kind != ChoiceNone {
				if choice.Track.Lang != tt.wanted {
					t.Errorf("Track.Lang = %q, want %q", choice.Track.Lang, tt.wanted)
				}
				if choice.Track.Ext != tt.ext {
					t.Errorf("Track.Ext = %q, want %q", choice.Track.Ext, tt.ext)
				}
			}
		})
	}
}

func TestChooseCaptionEmptyMetadata(t *testing.T) {
	md := &source.Metadata{Title: "no captions"}
	if choice := ChooseCaption(md, "en"); choice.Kind != ChoiceNone {
		t.Errorf("Kind = %v, want ChoiceNone", choice.Kind)
	}
}

func TestProvenanceString(t *testing.T) {
	tests := []struct {
		p    Provenance
		want string
	}{
		{ProvenanceManualCaption, "manual-caption"},
		{ProvenanceAutoCaption, "auto-caption"},
		{ProvenanceRecognition, "speech-recognition"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Provenance.String() = %q, want %q", got, tt.want)
		}
	}
}
