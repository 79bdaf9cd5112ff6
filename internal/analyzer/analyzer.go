package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrMalformedOutput = errors.New("model output is not valid JSON for the strength schema")
	ErrScoreOutOfRange = errors.New("strength score must be between 0 and 1")
	ErrMissingField    = errors.New("model output is missing a required field")
)

// AnalysisError reports any failure of a strength analysis: transport, service-side
// errors and non-conforming model output alike.
type AnalysisError struct {
	Op  string
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze password strength: %s: %v", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Analyzer asks a remote model to score a password.
type Analyzer struct {
	llm Completer
}

// New creates an Analyzer backed by llm.
func New(llm Completer) *Analyzer {
	return &Analyzer{llm: llm}
}

// Analyze sends password to the model once and returns its verdict. The password is not
// validated here and nothing is cached.
func (a *Analyzer) Analyze(ctx context.Context, password string) (model.StrengthResult, error) {
	raw, err := a.llm.Complete(ctx, BuildStrengthPrompt(password))
	if err != nil {
		return model.StrengthResult{}, &AnalysisError{Op: "request", Err: err}
	}

	result, err := parseResult(raw)
	if err != nil {
		return model.StrengthResult{}, &AnalysisError{Op: "decode", Err: err}
	}

	return result, nil
}

type rawResult struct {
	StrengthScore *float64 `json:"strengthScore"`
	Analysis      *string  `json:"analysis"`
}

// parseResult decodes a reply that must match the two-field schema exactly.
func parseResult(raw string) (model.StrengthResult, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.DisallowUnknownFields()

	var r rawResult
	if err := dec.Decode(&r); err != nil {
		return model.StrengthResult{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if dec.More() {
		return model.StrengthResult{}, fmt.Errorf("%w: trailing data", ErrMalformedOutput)
	}

	if r.StrengthScore == nil {
		return model.StrengthResult{}, fmt.Errorf("%w: strengthScore", ErrMissingField)
	}
	if r.Analysis == nil {
		return model.StrengthResult{}, fmt.Errorf("%w: analysis", ErrMissingField)
	}
	if *r.StrengthScore < 0 || *r.StrengthScore > 1 {
		return model.StrengthResult{}, fmt.Errorf("%w: got %v", ErrScoreOutOfRange, *r.StrengthScore)
	}

	return model.StrengthResult{
		StrengthScore: *r.StrengthScore,
		Analysis:      *r.Analysis,
	}, nil
}
