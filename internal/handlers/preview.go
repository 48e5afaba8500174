package handlers

import (
	"net/http"

	"diplomabuilder/internal/catalog"
	applog "diplomabuilder/internal/log"
	"diplomabuilder/internal/preview"
	"diplomabuilder/models"
)

// DiplomaPreview returns the rendered markup for a saved diploma along with
// a metadata summary. Public diplomas are visible to everyone; private ones
// only to their owner or an admin.
func DiplomaPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if database == nil {
		writeFailure(w, "Previews are not available right now. Please try again.")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, "Invalid form submission.")
		return
	}

	id := parseDiplomaID(r.PostFormValue("diploma_id"))
	if id == 0 {
		writeFailure(w, "Diploma not found.")
		return
	}

	diploma := &models.Diploma{}
	if err := database.WithContext(r.Context()).First(diploma, id).Error; err != nil {
		applog.Debug(r.Context(), "diploma lookup failed", "error", err, "diplomaID", id)
		writeFailure(w, "Diploma not found.")
		return
	}
	if !canView(r, diploma) {
		writeFailure(w, "Permission denied.")
		return
	}

	cfg := configurationFromRecord(diploma)
	stateName, _ := catalog.StateName(diploma.State)
	html := preview.Render(cfg, preview.Options{
		AssetBaseURL: builderConfig.AssetBaseURL,
		Watermark:    !ActiveSession(r),
	})

	writeSuccess(w, map[string]any{
		"html": html,
		"metadata": map[string]any{
			"diploma_id":      diploma.ID,
			"school_name":     diploma.SchoolName,
			"student_name":    diploma.StudentName,
			"graduation_date": diploma.GraduationDate,
			"city":            diploma.City,
			"state":           diploma.State,
			"state_name":      stateName,
			"diploma_style":   catalog.StyleByKey(diploma.DiplomaStyle).Name,
			"paper_color":     catalog.ColorByKey(diploma.PaperColor).Name,
			"is_public":       diploma.IsPublic,
			"download_count":  diploma.DownloadCount,
		},
	})
}

func canView(r *http.Request, diploma *models.Diploma) bool {
	if diploma.IsPublic || diploma.UserID == nil {
		return true
	}
	if currentUserIsAdmin(r) {
		return true
	}
	userID, ok := currentUserID(r)
	return ok && diploma.OwnedBy(userID)
}
