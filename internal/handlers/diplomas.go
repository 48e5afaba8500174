package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"diplomabuilder/internal/catalog"
	applog "diplomabuilder/internal/log"
	"diplomabuilder/internal/validate"
	"diplomabuilder/internal/wizard"
	"diplomabuilder/models"
)

// SaveDiploma persists the submitted builder configuration, creating a new
// record or updating the one named by diploma_id. Responses always use the
// success envelope at HTTP 200.
func SaveDiploma(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if database == nil {
		writeFailure(w, "Saving is not available right now. Please try again.")
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse save form", "error", err)
		writeFailure(w, "Invalid form submission.")
		return
	}

	cfg := configurationFromForm(r)
	cfg.Normalize()

	if gate := validate.Gate(cfg); !gate.OK {
		writeFailure(w, gate.Message)
		return
	}

	userID, authenticated := currentUserID(r)
	if !authenticated && !builderConfig.AllowGuests {
		writeFailure(w, "Please sign in to save your diploma.")
		return
	}

	var diploma *models.Diploma
	if cfg.Persisted() {
		existing, ok := loadEditableDiploma(r, cfg.DiplomaID)
		if !ok {
			writeFailure(w, "Diploma not found.")
			return
		}
		diploma = existing
	} else {
		if authenticated && builderConfig.MaxPerUser > 0 {
			var count int64
			if err := database.WithContext(r.Context()).Model(&models.Diploma{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				applog.Error(r.Context(), "failed to count diplomas", "error", err, "userID", userID)
				writeFailure(w, "We couldn't save your diploma right now. Please try again.")
				return
			}
			if count >= int64(builderConfig.MaxPerUser) {
				writeFailure(w, fmt.Sprintf("You have reached the maximum of %d saved diplomas.", builderConfig.MaxPerUser))
				return
			}
		}
		diploma = &models.Diploma{}
		if authenticated {
			uid := userID
			diploma.UserID = &uid
		}
	}

	applyConfiguration(diploma, cfg)

	if err := database.WithContext(r.Context()).Save(diploma).Error; err != nil {
		applog.Error(r.Context(), "failed to save diploma", "error", err, "diplomaID", cfg.DiplomaID)
		writeFailure(w, "We couldn't save your diploma right now. Please try again.")
		return
	}

	applog.Info(r.Context(), "diploma saved", "diplomaID", diploma.ID, "guest", diploma.UserID == nil)

	writeSuccess(w, map[string]any{
		"message":      "Diploma saved successfully!",
		"diploma_id":   diploma.ID,
		"redirect_url": redirectURLFor(diploma.ID, r.PostFormValue("product_type")),
	})
}

// MyDiplomas lists the acting user's saved diplomas, newest first.
func MyDiplomas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if database == nil {
		writeFailure(w, "Saved diplomas are not available right now. Please try again.")
		return
	}

	userID, authenticated := currentUserID(r)
	if !authenticated {
		writeFailure(w, "Please sign in to see your saved diplomas.")
		return
	}

	var diplomas []models.Diploma
	if err := database.WithContext(r.Context()).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&diplomas).Error; err != nil {
		applog.Error(r.Context(), "failed to list diplomas", "error", err, "userID", userID)
		writeFailure(w, "Saved diplomas are not available right now. Please try again.")
		return
	}

	writeSuccess(w, map[string]any{
		"diplomas": diplomas,
		"count":    len(diplomas),
	})
}

// configurationFromForm reads the wire fields into a wizard configuration.
// Unknown or missing fields fall back to defaults during Normalize.
func configurationFromForm(r *http.Request) wizard.Configuration {
	cfg := wizard.NewConfiguration()
	cfg.DiplomaStyle = strings.TrimSpace(r.PostFormValue("diploma_style"))
	cfg.PaperColor = strings.TrimSpace(r.PostFormValue("paper_color"))
	if cfg.PaperColor == "" {
		cfg.PaperColor = defaultPaperColor()
	}
	cfg.EmblemType = strings.TrimSpace(r.PostFormValue("emblem_type"))
	cfg.EmblemValue = strings.TrimSpace(r.PostFormValue("emblem_value"))
	cfg.SchoolName = strings.TrimSpace(r.PostFormValue(wizard.FieldSchoolName))
	cfg.StudentName = strings.TrimSpace(r.PostFormValue(wizard.FieldStudentName))
	cfg.GraduationDate = strings.TrimSpace(r.PostFormValue(wizard.FieldGraduationDate))
	cfg.City = strings.TrimSpace(r.PostFormValue(wizard.FieldCity))
	cfg.State = strings.TrimSpace(r.PostFormValue(wizard.FieldState))
	cfg.IsPublic = parseCheckbox(r.PostFormValue("is_public"))
	cfg.DiplomaID = parseDiplomaID(r.PostFormValue("diploma_id"))
	return cfg
}

// defaultPaperColor returns the configured seed color when it names a
// registered paper color, otherwise the catalog default.
func defaultPaperColor() string {
	if catalog.ValidColor(builderConfig.DefaultPaperColor) {
		return builderConfig.DefaultPaperColor
	}
	return catalog.DefaultColor
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// applyConfiguration copies the wizard fields onto the record and snapshots
// the full payload for later resume.
func applyConfiguration(diploma *models.Diploma, cfg wizard.Configuration) {
	diploma.DiplomaStyle = cfg.DiplomaStyle
	diploma.PaperColor = cfg.PaperColor
	diploma.EmblemType = cfg.EmblemType
	diploma.EmblemValue = cfg.EmblemValue
	diploma.SchoolName = cfg.SchoolName
	diploma.StudentName = cfg.StudentName
	diploma.GraduationDate = cfg.GraduationDate
	diploma.City = cfg.City
	diploma.State = cfg.State
	diploma.IsPublic = cfg.IsPublic
	if snapshot, err := json.Marshal(cfg); err == nil {
		diploma.ConfigurationData = string(snapshot)
	}
}

// redirectURLFor points at checkout when the chosen product is configured,
// otherwise back at the saved diploma.
func redirectURLFor(diplomaID uint, productType string) string {
	productID := 0
	switch strings.ToLower(strings.TrimSpace(productType)) {
	case "digital":
		productID = builderConfig.DigitalProductID
	case "printed":
		productID = builderConfig.PrintedProductID
	case "premium":
		productID = builderConfig.PremiumProductID
	}
	if productID > 0 {
		return fmt.Sprintf(builderConfig.CheckoutURLTemplate, productID)
	}
	return fmt.Sprintf("/builder?diploma_id=%d", diplomaID)
}
