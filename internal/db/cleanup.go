package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"diplomabuilder/models"
)

// CleanupGuestDiplomas hard-deletes guest records older than maxAge. Guest
// diplomas have no owner to return to, so stale ones are only disk and table
// weight. Returns the number of rows removed.
func CleanupGuestDiplomas(ctx context.Context, conn *gorm.DB, maxAge time.Duration) (int64, error) {
	if conn == nil {
		return 0, gorm.ErrInvalidDB
	}
	cutoff := time.Now().UTC().Add(-maxAge)
	result := conn.WithContext(ctx).Unscoped().
		Where("user_id IS NULL AND created_at < ?", cutoff).
		Delete(&models.Diploma{})
	return result.RowsAffected, result.Error
}
