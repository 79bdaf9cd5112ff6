package analyzer

import "context"

// Completer sends a prompt to a text-generation service and returns the raw reply.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Settings configures a concrete Completer.
type Settings struct {
	Model   string
	APIKey  string
	BaseURL string
}

// Prompt is a single-turn request. When Schema is set the service is asked to reply
// with JSON conforming to it.
type Prompt struct {
	System string
	User   string
	Schema *Schema
}

// Schema names a JSON schema for structured replies.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}
