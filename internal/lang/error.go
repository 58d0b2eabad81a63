package lang

import "errors"

// Error definitions for the lang package.
var (
	ErrUnsupportedSpeechTag = errors.New("'language' field is required. Use 'ne' (Nepali), 'si' (Sinhala), or 'en' (English)")
)
