package http

import (
	"net/http"

	"bazaar-be/internal/utils"
	"bazaar-be/models"
)

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "welcome to the bazaar marketplace API",
	}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, "route not found", http.StatusNotFound)
}
