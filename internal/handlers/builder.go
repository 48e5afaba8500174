package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	applog "diplomabuilder/internal/log"
	"diplomabuilder/internal/views/pages"
	"diplomabuilder/internal/wizard"
	"diplomabuilder/models"
)

// Builder renders the diploma builder wizard. When a diploma_id query
// parameter names a record the acting user may edit, the wizard resumes
// from its stored configuration; otherwise it starts fresh.
func Builder(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	ctl := wizard.NewController()
	ctl.Apply(wizard.SelectPaperColor{Key: defaultPaperColor()})
	if id := parseDiplomaID(r.URL.Query().Get("diploma_id")); id != 0 {
		if diploma, ok := loadEditableDiploma(r, id); ok {
			ctl = wizard.ResumeController(configurationFromRecord(diploma))
		}
	}

	view := pages.BuilderView{
		Config:        ctl.Config(),
		Step:          ctl.Step(),
		Authenticated: ActiveSession(r),
		AssetBaseURL:  builderConfig.AssetBaseURL,
	}

	var component templ.Component
	if isHTMX(r) {
		component = pages.BuilderPartial(view)
	} else {
		component = pages.Builder(view)
	}
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render builder", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseDiplomaID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// loadEditableDiploma fetches a record the acting user is allowed to modify.
// Admins may edit anything; everyone else only their own records.
func loadEditableDiploma(r *http.Request, id uint) (*models.Diploma, bool) {
	if database == nil {
		return nil, false
	}
	diploma := &models.Diploma{}
	if err := database.WithContext(r.Context()).First(diploma, id).Error; err != nil {
		return nil, false
	}
	if currentUserIsAdmin(r) {
		return diploma, true
	}
	userID, ok := currentUserID(r)
	if !ok || !diploma.OwnedBy(userID) {
		return nil, false
	}
	return diploma, true
}

// configurationFromRecord rebuilds the wizard state from a stored record,
// preferring the raw configuration snapshot when it still parses.
func configurationFromRecord(diploma *models.Diploma) wizard.Configuration {
	cfg := wizard.NewConfiguration()
	if diploma.ConfigurationData != "" {
		if err := json.Unmarshal([]byte(diploma.ConfigurationData), &cfg); err != nil {
			cfg = wizard.NewConfiguration()
		}
	}
	cfg.DiplomaStyle = diploma.DiplomaStyle
	cfg.PaperColor = diploma.PaperColor
	cfg.EmblemType = diploma.EmblemType
	cfg.EmblemValue = diploma.EmblemValue
	cfg.SchoolName = diploma.SchoolName
	cfg.StudentName = diploma.StudentName
	cfg.GraduationDate = diploma.GraduationDate
	cfg.City = diploma.City
	cfg.State = diploma.State
	cfg.IsPublic = diploma.IsPublic
	cfg.DiplomaID = diploma.ID
	return cfg
}
