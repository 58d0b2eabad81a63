package model

// Kind identifies the capability a model serves.
type Kind string

const (
	// KindSpeech is the whisper speech-recognition model.
	KindSpeech Kind = "speech"

	// KindTranslation is the translation model package.
	KindTranslation Kind = "translation"

	// KindVoice is the TTS voice model.
	KindVoice Kind = "voice"
)

// Instance is a resolved, ready-to-use model reference.
type Instance struct {
	Kind Kind
	Path string
}
