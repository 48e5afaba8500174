package models

import "gorm.io/gorm"

// Diploma is a persisted diploma configuration. UserID is nil for records
// created by guests. ConfigurationData holds the raw JSON snapshot of the
// builder payload that produced the record.
type Diploma struct {
	gorm.Model
	UserID            *uint  `gorm:"index" json:"user_id"`
	User              *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DiplomaStyle      string `gorm:"type:varchar(50);not null;index" json:"diploma_style"`
	PaperColor        string `gorm:"type:varchar(50);not null" json:"paper_color"`
	EmblemType        string `gorm:"type:varchar(50);not null" json:"emblem_type"`
	EmblemValue       string `gorm:"type:varchar(50);not null" json:"emblem_value"`
	SchoolName        string `gorm:"type:varchar(255);not null" json:"school_name"`
	StudentName       string `gorm:"type:varchar(255);default:''" json:"student_name"`
	GraduationDate    string `gorm:"type:varchar(100);not null" json:"graduation_date"`
	City              string `gorm:"type:varchar(100);not null" json:"city"`
	State             string `gorm:"type:varchar(100);not null" json:"state"`
	ConfigurationData string `gorm:"type:longtext" json:"configuration_data"`
	ImagePath         string `gorm:"type:varchar(500);default:''" json:"image_path"`
	IsPublic          bool   `gorm:"not null;default:false;index" json:"is_public"`
	DownloadCount     int    `gorm:"not null;default:0" json:"download_count"`
}

// OwnedBy reports whether the record belongs to the given user. Guest
// records belong to nobody.
func (d Diploma) OwnedBy(userID uint) bool {
	return d.UserID != nil && *d.UserID == userID
}
