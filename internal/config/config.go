package config

// Config holds the main configuration for the application.
type Config struct {
	Version  string         `json:"version"           yaml:"version"`
	Server   ServerConfig   `json:"server,omitempty"  yaml:"server,omitempty"`
	Storage  StorageConfig  `json:"storage,omitempty" yaml:"storage,omitempty"`
	Backends BackendsConfig `json:"backends"          yaml:"backends"`
	Models   ModelsConfig   `json:"models"            yaml:"models"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host     string `json:"host,omitempty"      yaml:"host,omitempty"`
	HTTPPort int    `json:"http_port,omitempty" yaml:"http_port,omitempty"`
}

// StorageConfig holds configuration for model storage and logs.
type StorageConfig struct {
	ModelsDir string `json:"models_dir,omitempty" yaml:"models_dir,omitempty"`
	LogFile   string `json:"log_file,omitempty"   yaml:"log_file,omitempty"`
}

// BackendsConfig holds the per-backend binary and endpoint settings.
type BackendsConfig struct {
	Whisper   BinaryConfig `json:"whisper,omitempty"   yaml:"whisper,omitempty"`
	Argos     BinaryConfig `json:"argos,omitempty"     yaml:"argos,omitempty"`
	Tesseract BinaryConfig `json:"tesseract,omitempty" yaml:"tesseract,omitempty"`
	Piper     BinaryConfig `json:"piper,omitempty"     yaml:"piper,omitempty"`
	Ollama    OllamaConfig `json:"ollama,omitempty"    yaml:"ollama,omitempty"`
}

// BinaryConfig points at a backend executable.
type BinaryConfig struct {
	BinPath string `json:"bin_path,omitempty" yaml:"bin_path,omitempty"`
}

// OllamaConfig holds settings for the local Ollama instance.
type OllamaConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// ModelsConfig assigns a model file to each capability. Unassigned
// capabilities report unavailable at request time.
type ModelsConfig struct {
	Speech      ModelRef `json:"speech,omitempty"      yaml:"speech,omitempty"`
	Translation ModelRef `json:"translation,omitempty" yaml:"translation,omitempty"`
	Voice       ModelRef `json:"voice,omitempty"       yaml:"voice,omitempty"`
}

// ModelRef points at a model file or package directory.
type ModelRef struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}
