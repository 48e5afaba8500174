package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "diplomabuilder/internal/log"
	"diplomabuilder/models"
)

// New returns an in-memory sqlite database seeded with representative
// diploma records and accounts.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:diplomabuilder-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Diploma{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte("commencement"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	graduate := &models.User{
		Name:         "Jordan Hale",
		Email:        "jordan@diplomabuilder.app",
		PasswordHash: string(password),
	}
	if err := db.WithContext(ctx).Create(graduate).Error; err != nil {
		return err
	}

	registrar := &models.User{
		Name:         "Casey Whitfield",
		Email:        "registrar@diplomabuilder.app",
		PasswordHash: string(password),
		IsAdmin:      true,
	}
	if err := db.WithContext(ctx).Create(registrar).Error; err != nil {
		return err
	}

	diplomas := []models.Diploma{
		{
			UserID:         &graduate.ID,
			DiplomaStyle:   "classic",
			PaperColor:     "ivory",
			EmblemType:     "generic",
			EmblemValue:    "graduation_cap",
			SchoolName:     "Lincoln High School",
			StudentName:    "Jordan Hale",
			GraduationDate: "June 1, 2024",
			City:           "Springfield",
			State:          "IL",
			IsPublic:       true,
			DownloadCount:  3,
		},
		{
			UserID:         &graduate.ID,
			DiplomaStyle:   "modern",
			PaperColor:     "white",
			EmblemType:     "state",
			EmblemValue:    "TX",
			SchoolName:     "Austin Preparatory Academy",
			GraduationDate: "May 24, 2025",
			City:           "Austin",
			State:          "TX",
		},
		{
			// Guest record held only by its identifier.
			DiplomaStyle:   "minimalist",
			PaperColor:     "light_gray",
			EmblemType:     "generic",
			EmblemValue:    "laurel_wreath",
			SchoolName:     "Riverside Senior High",
			GraduationDate: "June 14, 2023",
			City:           "Portland",
			State:          "OR",
		},
	}

	for _, diploma := range diplomas {
		record := diploma
		if err := db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
