package model

import "math"

// StrengthResult is the advisory verdict returned by the remote model.
type StrengthResult struct {
	StrengthScore float64 `json:"strengthScore"`
	Analysis      string  `json:"analysis"`
}

// Label buckets the score the same way the strength meter does.
func (r StrengthResult) Label() string {
	switch {
	case r.StrengthScore >= 0.8:
		return "Very Strong"
	case r.StrengthScore >= 0.6:
		return "Strong"
	case r.StrengthScore >= 0.3:
		return "Moderate"
	default:
		return "Weak"
	}
}

// Percent returns the score as a rounded percentage.
func (r StrengthResult) Percent() int {
	return int(math.Round(r.StrengthScore * 100))
}

// AnalyzeRequest represents a strength analysis request.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// AnalyzeResponse represents a strength analysis response.
type AnalyzeResponse struct {
	StrengthScore float64 `json:"strengthScore"`
	Analysis      string  `json:"analysis"`
	Label         string  `json:"label"`
	Percent       int     `json:"percent"`
}
