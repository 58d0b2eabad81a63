package envvar

const (
	// TranslyEnv is the environment variable used to determine the environment
	TranslyEnv = "TRANSLY_ENV"

	// TranslyHTTPPort is the environment variable used to determine the HTTP port
	TranslyHTTPPort = "TRANSLY_HTTP_PORT"

	// TranslyModelsPath is the environment variable used to determine the models directory
	TranslyModelsPath = "TRANSLY_MODELS_PATH"

	// TranslyOllamaURL is the environment variable used to override the Ollama base URL
	TranslyOllamaURL = "TRANSLY_OLLAMA_URL"
)
