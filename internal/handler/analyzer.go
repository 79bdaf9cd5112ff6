package handler

import (
	"errors"
	"net/http"

	"github.com/passforge/passforge-go/internal/analyzer"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// AnalyzerHandler handles HTTP requests for password strength analysis.
type AnalyzerHandler struct {
	service *service.AnalyzerService
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: svc}
}

// HandleAnalyze handles POST /api/v1/analyze requests.
func (h *AnalyzerHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		var aerr *analyzer.AnalysisError
		switch {
		case errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrAnalyzerUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
		case errors.As(err, &aerr):
			writeJSON(w, http.StatusBadGateway, errorResponse("could not analyze password strength"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
