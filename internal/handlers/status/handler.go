package status

import (
	"net/http"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports liveness. The deployment platform polls it.
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, healthResponse{Status: "ok"})
}
