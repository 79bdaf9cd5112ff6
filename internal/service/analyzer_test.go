package service

import (
	"context"
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result model.StrengthResult
	err    error
	calls  int
}

func (a *stubAnalyzer) Analyze(_ context.Context, _ string) (model.StrengthResult, error) {
	a.calls++
	return a.result, a.err
}

func TestAnalyze_EmptyPassword(t *testing.T) {
	an := &stubAnalyzer{}
	svc := NewAnalyzerService(an)

	_, err := svc.Analyze(context.Background(), model.AnalyzeRequest{})

	assert.ErrorIs(t, err, ErrPasswordRequired)
	assert.Zero(t, an.calls)
}

func TestAnalyze_Unconfigured(t *testing.T) {
	svc := NewAnalyzerService(nil)

	_, err := svc.Analyze(context.Background(), model.AnalyzeRequest{Password: "abc"})

	assert.ErrorIs(t, err, ErrAnalyzerUnavailable)
}

func TestAnalyze_Success(t *testing.T) {
	an := &stubAnalyzer{result: model.StrengthResult{StrengthScore: 0.65, Analysis: "decent"}}
	svc := NewAnalyzerService(an)

	resp, err := svc.Analyze(context.Background(), model.AnalyzeRequest{Password: "abc"})
	require.NoError(t, err)

	assert.Equal(t, model.AnalyzeResponse{
		StrengthScore: 0.65,
		Analysis:      "decent",
		Label:         "Strong",
		Percent:       65,
	}, resp)
	assert.Equal(t, 1, an.calls)
}

func TestAnalyze_PropagatesError(t *testing.T) {
	cause := errors.New("upstream")
	svc := NewAnalyzerService(&stubAnalyzer{err: cause})

	_, err := svc.Analyze(context.Background(), model.AnalyzeRequest{Password: "abc"})

	assert.ErrorIs(t, err, cause)
}
