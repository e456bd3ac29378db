package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestSize(maxBodyBytes))

	r.Post("/", h.GenerateQuestions)
	return r
}
