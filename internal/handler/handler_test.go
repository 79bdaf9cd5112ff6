package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/analyzer"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result model.StrengthResult
	err    error
}

func (a stubAnalyzer) Analyze(_ context.Context, _ string) (model.StrengthResult, error) {
	return a.result, a.err
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLength int
		wantError  string
	}{
		{"empty body uses defaults", "", http.StatusOK, 16, ""},
		{"custom length", `{"length":40}`, http.StatusOK, 40, ""},
		{"minimum length", `{"length":8,"symbols":false}`, http.StatusOK, 8, ""},
		{"too short", `{"length":4}`, http.StatusBadRequest, 0, "password length must be at least 8"},
		{"too long", `{"length":100}`, http.StatusBadRequest, 0, "password length must be at most 64"},
		{
			"no classes",
			`{"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`,
			http.StatusBadRequest, 0, "at least one character type must be selected",
		},
		{"malformed json", `{"length":`, http.StatusBadRequest, 0, "invalid request body"},
	}

	h := NewGeneratorHandler(service.NewGeneratorService())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var body map[string]string
				decode(t, rec, &body)
				assert.Equal(t, tt.wantError, body["error"])
				return
			}

			var resp model.GenerateResponse
			decode(t, rec, &resp)
			assert.Equal(t, tt.wantLength, resp.Length)
			assert.Len(t, resp.Password, tt.wantLength)
		})
	}
}

func TestHandleGenerate_EmptyChunkedBody(t *testing.T) {
	h := NewGeneratorHandler(service.NewGeneratorService())

	for _, body := range []string{"", "  \n"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
		rec := httptest.NewRecorder()

		h.HandleGenerate(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "body %q", body)
		var resp model.GenerateResponse
		decode(t, rec, &resp)
		assert.Equal(t, 16, resp.Length)
	}
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	h := NewGeneratorHandler(service.NewGeneratorService())
	body := `{"length":16,"pad":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		analyzer   service.StrengthAnalyzer
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			analyzer:   stubAnalyzer{result: model.StrengthResult{StrengthScore: 0.85, Analysis: "great"}},
			body:       `{"password":"Zx8!qP2#mW9$"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty password",
			analyzer:   stubAnalyzer{},
			body:       `{"password":""}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "password is required",
		},
		{
			name:       "not configured",
			analyzer:   nil,
			body:       `{"password":"abc"}`,
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "strength analysis is not configured",
		},
		{
			name:       "analysis failure",
			analyzer:   stubAnalyzer{err: &analyzer.AnalysisError{Op: "request", Err: errors.New("timeout")}},
			body:       `{"password":"abc"}`,
			wantStatus: http.StatusBadGateway,
			wantError:  "could not analyze password strength",
		},
		{
			name:       "unexpected failure",
			analyzer:   stubAnalyzer{err: errors.New("boom")},
			body:       `{"password":"abc"}`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:       "malformed json",
			analyzer:   stubAnalyzer{},
			body:       `nope`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAnalyzerHandler(service.NewAnalyzerService(tt.analyzer))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleAnalyze(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				var body map[string]string
				decode(t, rec, &body)
				assert.Equal(t, tt.wantError, body["error"])
				return
			}

			var resp model.AnalyzeResponse
			decode(t, rec, &resp)
			assert.Equal(t, model.AnalyzeResponse{
				StrengthScore: 0.85,
				Analysis:      "great",
				Label:         "Very Strong",
				Percent:       85,
			}, resp)
		})
	}
}
