package lang

// Tag is an ISO-639-1 style language tag.
type Tag string

const (
	TagEnglish Tag = "en"
	TagNepali  Tag = "ne"
	TagSinhala Tag = "si"

	// TagAuto defers the choice of language to detection or mirroring.
	TagAuto Tag = "auto"
)

// Unicode block boundaries used by Detect.
const (
	sinhalaLo    = 0x0D80
	sinhalaHi    = 0x0DFF
	devanagariLo = 0x0900
	devanagariHi = 0x097F
)

// labels maps language tags to human-readable names.
var labels = map[Tag]string{
	TagEnglish: "English",
	TagNepali:  "Nepali",
	TagSinhala: "Sinhala",
}

// scripts maps language tags to the script they are written in.
var scripts = map[Tag]string{
	TagEnglish: "Latin",
	TagNepali:  "Devanagari",
	TagSinhala: "Sinhala",
}

// Detect classifies text by script membership: Sinhala wins over Devanagari,
// anything else is English. It scans once per block and short-circuits on the
// first hit, so it is O(len(text)) and never fails.
func Detect(text string) Tag {
	for _, r := range text {
		if r >= sinhalaLo && r <= sinhalaHi {
			return TagSinhala
		}
	}
	for _, r := range text {
		if r >= devanagariLo && r <= devanagariHi {
			return TagNepali
		}
	}
	return TagEnglish
}

// Label returns the human-readable name for a tag, defaulting to English.
func Label(t Tag) string {
	if l, ok := labels[t]; ok {
		return l
	}
	return labels[TagEnglish]
}

// Script returns the script name for a tag, defaulting to Latin.
func Script(t Tag) string {
	if s, ok := scripts[t]; ok {
		return s
	}
	return scripts[TagEnglish]
}

// IsSpeechTag reports whether t is one of the three tags the speech models
// accept. "auto" is deliberately excluded: transcription always runs with a
// fixed language.
func IsSpeechTag(t Tag) bool {
	switch t {
	case TagEnglish, TagNepali, TagSinhala:
		return true
	}
	return false
}

// IsKnown reports whether t names a concrete supported language.
func IsKnown(t Tag) bool {
	_, ok := labels[t]
	return ok
}
