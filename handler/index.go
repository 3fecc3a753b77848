package handler

import (
	"encoding/json"
	"net/http"

	"perfume-shop/models"
	"perfume-shop/services"
)

// Handler answers the root liveness probe. It has no dependencies so it
// keeps responding when the store is down.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: services.RootMessage})
}
