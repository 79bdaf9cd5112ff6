package analyzer

import "fmt"

const strengthSystemPrompt = "You are an expert in password security."

const strengthUserTemplate = `Analyze the following password and provide a strength score between 0 and 1, and an analysis of its weaknesses and suggestions for improvement.

Password: %s`

var strengthSchema = &Schema{
	Name:        "password_strength",
	Description: "Strength score and analysis of a password",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengthScore": map[string]any{
				"type":        "number",
				"description": "A score from 0 to 1 indicating the password strength.",
			},
			"analysis": map[string]any{
				"type":        "string",
				"description": "An analysis of the password, including potential weaknesses and suggestions for improvement.",
			},
		},
		"required":             []string{"strengthScore", "analysis"},
		"additionalProperties": false,
	},
}

// BuildStrengthPrompt returns the fixed strength-analysis prompt for password.
func BuildStrengthPrompt(password string) Prompt {
	return Prompt{
		System: strengthSystemPrompt,
		User:   fmt.Sprintf(strengthUserTemplate, password),
		Schema: strengthSchema,
	}
}
