package handlers

import (
	"net/http"
	"strings"

	"diplomabuilder/internal/catalog"
	applog "diplomabuilder/internal/log"
)

// StateEmblem resolves the seal asset for a state code so the client can
// swap the preview emblem without a page reload.
func StateEmblem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, "Invalid form submission.")
		return
	}

	code := strings.ToUpper(strings.TrimSpace(r.PostFormValue("state")))
	emblem, err := catalog.StateEmblemLookup(builderConfig.AssetRoot, builderConfig.AssetBaseURL, code)
	if err != nil {
		applog.Debug(r.Context(), "state emblem lookup rejected", "state", code, "error", err)
		writeFailure(w, "Unknown state.")
		return
	}

	writeSuccess(w, emblem)
}
