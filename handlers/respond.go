package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"VinavalPortal/gateway"
	"VinavalPortal/mutate"
	"VinavalPortal/session"
)

// Shared collaborators, wired once from main. Tests swap them for instances
// pointed at a fake backend.
var (
	Gateway   *gateway.Client
	Sessions  *session.Store
	Mutations *mutate.Coordinator
)

func Init(gw *gateway.Client, store *session.Store, coordinator *mutate.Coordinator) {
	Gateway = gw
	Sessions = store
	Mutations = coordinator
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithGatewayError relays an upstream failure without rewording it.
// Transport errors (backend unreachable, bad payloads) have no upstream status
// and become a 502.
func respondWithGatewayError(w http.ResponseWriter, err error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		respondWithError(w, apiErr.Status, apiErr.Message)
		return
	}
	respondWithError(w, http.StatusBadGateway, err.Error())
}
