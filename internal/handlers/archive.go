package handlers

import (
	"net/http"
	"path"
	"time"

	"gorm.io/gorm"

	"diplomabuilder/internal/export"
	applog "diplomabuilder/internal/log"
	"diplomabuilder/internal/validate"
	"diplomabuilder/models"
)

// GenerateDiplomaImage accepts the rasterized diploma from the client,
// archives it under the upload directory and records the file against the
// diploma. When no diploma_id is supplied the configuration fields are saved
// as a new record first, so every archived image has a backing row.
func GenerateDiplomaImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if database == nil {
		writeFailure(w, "Downloads are not available right now. Please try again.")
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse archive form", "error", err)
		writeFailure(w, "Invalid form submission.")
		return
	}

	image, ext, err := export.DecodeImage(r.PostFormValue("image_data"))
	if err != nil {
		applog.Debug(r.Context(), "rejected diploma image payload", "error", err)
		writeFailure(w, "The diploma image could not be processed.")
		return
	}

	diploma, ok := resolveArchiveTarget(w, r)
	if !ok {
		return
	}

	archiver := export.Archiver{Dir: builderConfig.UploadDir}
	filename, err := archiver.Store(diploma.ID, image, ext)
	if err != nil {
		applog.Error(r.Context(), "failed to archive diploma image", "error", err, "diplomaID", diploma.ID)
		writeFailure(w, "We couldn't store your diploma image. Please try again.")
		return
	}

	updates := map[string]any{
		"image_path":     filename,
		"download_count": gorm.Expr("download_count + 1"),
	}
	if err := database.WithContext(r.Context()).Model(diploma).Updates(updates).Error; err != nil {
		applog.Error(r.Context(), "failed to record archived image", "error", err, "diplomaID", diploma.ID)
		writeFailure(w, "We couldn't store your diploma image. Please try again.")
		return
	}

	applog.Info(r.Context(), "diploma image archived", "diplomaID", diploma.ID, "file", filename)

	writeSuccess(w, map[string]any{
		"diploma_id":   diploma.ID,
		"download_url": path.Join("/", builderConfig.UploadDir, filename),
		"filename":     export.DownloadFilename(diploma.SchoolName, time.Now()),
		"file_size":    export.HumanSize(archiver.FileSize(filename)),
	})
}

// resolveArchiveTarget loads the diploma being archived, or creates one from
// the submitted configuration when no id was supplied. A false return means a
// failure envelope has already been written.
func resolveArchiveTarget(w http.ResponseWriter, r *http.Request) (*models.Diploma, bool) {
	if id := parseDiplomaID(r.PostFormValue("diploma_id")); id != 0 {
		diploma := &models.Diploma{}
		if err := database.WithContext(r.Context()).First(diploma, id).Error; err != nil {
			writeFailure(w, "Diploma not found.")
			return nil, false
		}
		if !canArchive(r, diploma) {
			writeFailure(w, "Permission denied.")
			return nil, false
		}
		return diploma, true
	}

	cfg := configurationFromForm(r)
	cfg.Normalize()
	if gate := validate.Gate(cfg); !gate.OK {
		writeFailure(w, gate.Message)
		return nil, false
	}

	userID, authenticated := currentUserID(r)
	if !authenticated && !builderConfig.AllowGuests {
		writeFailure(w, "Please sign in to download your diploma.")
		return nil, false
	}

	diploma := &models.Diploma{}
	if authenticated {
		uid := userID
		diploma.UserID = &uid
	}
	applyConfiguration(diploma, cfg)
	if err := database.WithContext(r.Context()).Create(diploma).Error; err != nil {
		applog.Error(r.Context(), "failed to create diploma for archive", "error", err)
		writeFailure(w, "We couldn't save your diploma right now. Please try again.")
		return nil, false
	}
	return diploma, true
}

// canArchive permits owners and admins; guest records have no owner and stay
// downloadable by anyone who knows the id.
func canArchive(r *http.Request, diploma *models.Diploma) bool {
	if diploma.UserID == nil {
		return true
	}
	if currentUserIsAdmin(r) {
		return true
	}
	userID, ok := currentUserID(r)
	return ok && diploma.OwnedBy(userID)
}
