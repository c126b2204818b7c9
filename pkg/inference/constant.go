package inference

const (
	// DefaultEndpoint is the GitHub Models inference endpoint.
	DefaultEndpoint = "https://models.github.ai/inference"

	// DefaultModel is the default chat model.
	DefaultModel = "openai/gpt-4.1"

	// DefaultTemperature and DefaultTopP are the fixed sampling parameters.
	DefaultTemperature = 0.7
	DefaultTopP        = 1.0

	roleSystem = "system"
	roleUser   = "user"
)
