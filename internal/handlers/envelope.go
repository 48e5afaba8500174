package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	applog "diplomabuilder/internal/log"
)

// envelope is the wire shape every builder endpoint responds with. The
// transport always answers 200; clients branch on the Success flag, never on
// the HTTP status. Data carries the payload on success and the user-facing
// message on failure.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeEnvelope(w, envelope{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, message string) {
	writeEnvelope(w, envelope{Success: false, Data: message})
}

func writeEnvelope(w http.ResponseWriter, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		applog.Error(context.Background(), "failed to encode response envelope", "error", err)
	}
}
