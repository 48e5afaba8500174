package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	applog "diplomabuilder/internal/log"
	"diplomabuilder/models"
)

// csvTimeLayout matches the timestamps in the admin export.
const csvTimeLayout = "2006-01-02 15:04:05"

var exportHeader = []string{
	"ID", "User ID", "School Name", "Student Name", "Graduation Date",
	"City", "State", "Diploma Style", "Paper Color", "Emblem Type",
	"Emblem Value", "Is Public", "Download Count", "Created Date", "Updated Date",
}

// RequireAdmin guards the admin endpoints. Unlike the builder endpoints,
// authorization failures here surface as real HTTP statuses so that probes
// and scripts see them.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			writeEnvelopeStatus(w, http.StatusUnauthorized, "You must be signed in.")
			return
		}
		if !currentUserIsAdmin(r) {
			writeEnvelopeStatus(w, http.StatusForbidden, "Permission denied.")
			return
		}
		next(w, r)
	}
}

func writeEnvelopeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Data: message}); err != nil {
		applog.Error(context.Background(), "failed to encode admin response", "error", err)
	}
}

// DeleteDiploma removes a single record.
func DeleteDiploma(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
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

	result := database.WithContext(r.Context()).Unscoped().Delete(&models.Diploma{}, id)
	if result.Error != nil {
		applog.Error(r.Context(), "failed to delete diploma", "error", result.Error, "diplomaID", id)
		writeFailure(w, "We couldn't delete the diploma. Please try again.")
		return
	}
	if result.RowsAffected == 0 {
		writeFailure(w, "Diploma not found.")
		return
	}

	applog.Info(r.Context(), "diploma deleted", "diplomaID", id)
	writeSuccess(w, map[string]any{"deleted": 1})
}

// BulkDeleteDiplomas removes every record named in diploma_ids. An empty
// selection is rejected before the store is touched.
func BulkDeleteDiplomas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, "Invalid form submission.")
		return
	}

	ids := parseDiplomaIDList(r.PostForm["diploma_ids"])
	if len(ids) == 0 {
		writeFailure(w, "No diplomas selected.")
		return
	}

	result := database.WithContext(r.Context()).Unscoped().Delete(&models.Diploma{}, ids)
	if result.Error != nil {
		applog.Error(r.Context(), "failed to bulk delete diplomas", "error", result.Error, "count", len(ids))
		writeFailure(w, "We couldn't delete the diplomas. Please try again.")
		return
	}

	applog.Info(r.Context(), "diplomas bulk deleted", "requested", len(ids), "deleted", result.RowsAffected)
	writeSuccess(w, map[string]any{"deleted": result.RowsAffected})
}

// parseDiplomaIDList accepts repeated form values as well as comma separated
// lists, skipping anything that is not a positive integer.
func parseDiplomaIDList(values []string) []uint {
	var ids []uint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if id := parseDiplomaID(strings.TrimSpace(part)); id != 0 {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

const defaultPageSize = 20

// ListDiplomas pages through every stored diploma for the admin table, with
// an optional search term matched against school, student, city and state.
func ListDiplomas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	page := positiveIntOrDefault(query.Get("page"), 1)
	perPage := positiveIntOrDefault(query.Get("per_page"), defaultPageSize)
	search := strings.TrimSpace(query.Get("search"))

	scope := func() *gorm.DB {
		tx := database.WithContext(r.Context()).Model(&models.Diploma{})
		if search != "" {
			like := "%" + search + "%"
			tx = tx.Where(
				"school_name LIKE ? OR student_name LIKE ? OR city LIKE ? OR state LIKE ?",
				like, like, like, like,
			)
		}
		return tx
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		applog.Error(r.Context(), "failed to count diplomas for listing", "error", err)
		writeFailure(w, "Listing is not available right now.")
		return
	}

	var diplomas []models.Diploma
	if err := scope().Order("id desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&diplomas).Error; err != nil {
		applog.Error(r.Context(), "failed to list diplomas", "error", err)
		writeFailure(w, "Listing is not available right now.")
		return
	}

	writeSuccess(w, map[string]any{
		"diplomas": diplomas,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func positiveIntOrDefault(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

type diplomaStats struct {
	Total          int64            `json:"total"`
	UniqueUsers    int64            `json:"unique_users"`
	Guests         int64            `json:"guests"`
	ThisWeek       int64            `json:"this_week"`
	ThisMonth      int64            `json:"this_month"`
	PopularStyle   string           `json:"popular_style"`
	PopularColor   string           `json:"popular_color"`
	StyleBreakdown map[string]int64 `json:"style_breakdown"`
}

// DiplomaStats summarizes the stored diplomas for the admin dashboard.
func DiplomaStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	stats := diplomaStats{StyleBreakdown: map[string]int64{}}

	tx := database.WithContext(ctx).Model(&models.Diploma{})
	if err := tx.Count(&stats.Total).Error; err != nil {
		applog.Error(ctx, "failed to compute diploma stats", "error", err)
		writeFailure(w, "Statistics are not available right now.")
		return
	}

	now := time.Now().UTC()
	database.WithContext(ctx).Model(&models.Diploma{}).Where("user_id IS NOT NULL").Distinct("user_id").Count(&stats.UniqueUsers)
	database.WithContext(ctx).Model(&models.Diploma{}).Where("user_id IS NULL").Count(&stats.Guests)
	database.WithContext(ctx).Model(&models.Diploma{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&stats.ThisWeek)
	database.WithContext(ctx).Model(&models.Diploma{}).Where("created_at >= ?", now.AddDate(0, -1, 0)).Count(&stats.ThisMonth)

	type keyedCount struct {
		Key   string `gorm:"column:k"`
		Count int64  `gorm:"column:c"`
	}
	var styles []keyedCount
	database.WithContext(ctx).Model(&models.Diploma{}).
		Select("diploma_style as k, count(*) as c").
		Group("diploma_style").Order("c desc").Scan(&styles)
	for i, row := range styles {
		stats.StyleBreakdown[row.Key] = row.Count
		if i == 0 {
			stats.PopularStyle = row.Key
		}
	}

	var color keyedCount
	database.WithContext(ctx).Model(&models.Diploma{}).
		Select("paper_color as k, count(*) as c").
		Group("paper_color").Order("c desc").Limit(1).Scan(&color)
	stats.PopularColor = color.Key

	writeSuccess(w, stats)
}

// ExportDiplomasCSV streams every stored diploma as a spreadsheet-friendly
// CSV. The UTF-8 byte order mark keeps Excel from mangling the encoding.
func ExportDiplomasCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var diplomas []models.Diploma
	if err := database.WithContext(r.Context()).Order("id").Find(&diplomas).Error; err != nil {
		applog.Error(r.Context(), "failed to load diplomas for export", "error", err)
		writeFailure(w, "Export is not available right now.")
		return
	}

	filename := fmt.Sprintf("diplomas_export_%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return
	}
	for _, diploma := range diplomas {
		if err := writer.Write(exportRow(diploma)); err != nil {
			return
		}
	}
	writer.Flush()
}

func exportRow(d models.Diploma) []string {
	userID := "Guest"
	if d.UserID != nil {
		userID = fmt.Sprintf("%d", *d.UserID)
	}
	studentName := d.StudentName
	if strings.TrimSpace(studentName) == "" {
		studentName = "Not specified"
	}
	isPublic := "No"
	if d.IsPublic {
		isPublic = "Yes"
	}
	return []string{
		fmt.Sprintf("%d", d.ID),
		userID,
		d.SchoolName,
		studentName,
		d.GraduationDate,
		d.City,
		d.State,
		d.DiplomaStyle,
		d.PaperColor,
		d.EmblemType,
		d.EmblemValue,
		isPublic,
		fmt.Sprintf("%d", d.DownloadCount),
		d.CreatedAt.UTC().Format(csvTimeLayout),
		d.UpdatedAt.UTC().Format(csvTimeLayout),
	}
}
