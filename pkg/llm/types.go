package llm

import "time"

// Config holds the configuration for explanation requests.
type Config struct {
	APIKey      string        // credential; Explain fails fast without it
	BaseURL     string        // for OpenAI-compatible APIs
	Model       string        // model to use (e.g., "gpt-4o-mini")
	Temperature float64       // temperature for response generation
	MaxTokens   int           // maximum tokens in response; 0 keeps the provider default
	Timeout     time.Duration // bound on the single request attempt
}

// Request carries one completed netcat run to be explained.
type Request struct {
	Command  string // literal command line that was executed
	ExitCode int
	Output   string // stdout and stderr combined, in the order produced
}
