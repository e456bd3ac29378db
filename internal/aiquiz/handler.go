package aiquiz

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

// GenerateQuestions godoc
// @Summary Generate a batch of multiple-choice questions
// @Tags drill
// @Accept json
// @Produce json
// @Param request body QuestionRequest true "Drill parameters"
// @Success 200 {object} QuestionResponse
// @Failure 400 {object} config.ErrorBody
// @Failure 402 {object} config.ErrorBody
// @Failure 429 {object} config.ErrorBody
// @Failure 500 {object} config.ErrorBody
// @Router /functions/generate-questions [post]
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		apperr.Write(w, err, "failed to generate questions")
		return
	}

	config.JSON(w, http.StatusOK, QuestionResponse{Questions: questions})
}
