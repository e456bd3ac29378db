package analysis

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// AnalyzeResults godoc
// @Summary Analyze a completed drill
// @Tags drill
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Completed attempt"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} config.ErrorBody
// @Failure 402 {object} config.ErrorBody
// @Failure 429 {object} config.ErrorBody
// @Failure 500 {object} config.ErrorBody
// @Router /functions/analyze-results [post]
func (h *Handler) AnalyzeResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	analysis, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to analyze results")
		apperr.Write(w, err, "failed to analyze results")
		return
	}

	config.JSON(w, http.StatusOK, AnalyzeResponse{Analysis: analysis})
}
