package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrPasswordRequired    = errors.New("password is required")
	ErrAnalyzerUnavailable = errors.New("strength analysis is not configured")
)

// StrengthAnalyzer scores a password against a remote model.
type StrengthAnalyzer interface {
	Analyze(ctx context.Context, password string) (model.StrengthResult, error)
}

// AnalyzerService handles strength analysis business logic.
type AnalyzerService struct {
	analyzer StrengthAnalyzer
}

// NewAnalyzerService creates a new AnalyzerService. A nil analyzer makes every call
// fail with ErrAnalyzerUnavailable.
func NewAnalyzerService(analyzer StrengthAnalyzer) *AnalyzerService {
	return &AnalyzerService{analyzer: analyzer}
}

// Analyze checks the request and forwards the password to the analyzer.
func (s *AnalyzerService) Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	if req.Password == "" {
		return model.AnalyzeResponse{}, ErrPasswordRequired
	}
	if s.analyzer == nil {
		return model.AnalyzeResponse{}, ErrAnalyzerUnavailable
	}

	result, err := s.analyzer.Analyze(ctx, req.Password)
	if err != nil {
		slog.Warn("strength analysis failed", "error", err)
		return model.AnalyzeResponse{}, err
	}

	return model.AnalyzeResponse{
		StrengthScore: result.StrengthScore,
		Analysis:      result.Analysis,
		Label:         result.Label(),
		Percent:       result.Percent(),
	}, nil
}
