package wizard

import (
	"strings"

	"diplomabuilder/internal/catalog"
)

// Field names accepted by UpdateField intents.
const (
	FieldSchoolName     = "school_name"
	FieldStudentName    = "student_name"
	FieldGraduationDate = "graduation_date"
	FieldCity           = "city"
	FieldState          = "state"
)

// Configuration is the in-memory record of a user's current diploma
// customization choices. It is owned by a single Controller for the duration
// of one editing session.
type Configuration struct {
	DiplomaStyle   string `json:"diploma_style"`
	PaperColor     string `json:"paper_color"`
	EmblemType     string `json:"emblem_type"`
	EmblemValue    string `json:"emblem_value"`
	SchoolName     string `json:"school_name"`
	StudentName    string `json:"student_name"`
	GraduationDate string `json:"graduation_date"`
	City           string `json:"city"`
	State          string `json:"state"`
	IsPublic       bool   `json:"is_public"`

	// DiplomaID is zero until the configuration has been persisted; once set,
	// subsequent saves are updates.
	DiplomaID uint `json:"diploma_id,omitempty"`
}

// NewConfiguration returns a configuration populated with the catalog defaults.
func NewConfiguration() Configuration {
	return Configuration{
		DiplomaStyle: catalog.DefaultStyle,
		PaperColor:   catalog.DefaultColor,
		EmblemType:   catalog.EmblemTypeGeneric,
		EmblemValue:  catalog.DefaultEmblem,
	}
}

// EmblemSlots reports the number of emblem slots the selected style declares.
// This is derived from the catalog, never stored.
func (c Configuration) EmblemSlots() int {
	return catalog.EmblemSlots(c.DiplomaStyle)
}

// Persisted reports whether the configuration refers to a saved record.
func (c Configuration) Persisted() bool {
	return c.DiplomaID != 0
}

// FieldValue returns the named free-text field.
func (c Configuration) FieldValue(name string) string {
	switch name {
	case FieldSchoolName:
		return c.SchoolName
	case FieldStudentName:
		return c.StudentName
	case FieldGraduationDate:
		return c.GraduationDate
	case FieldCity:
		return c.City
	case FieldState:
		return c.State
	}
	return ""
}

func (c *Configuration) setField(name, value string) bool {
	switch name {
	case FieldSchoolName:
		c.SchoolName = value
	case FieldStudentName:
		c.StudentName = value
	case FieldGraduationDate:
		c.GraduationDate = value
	case FieldCity:
		c.City = value
	case FieldState:
		c.State = value
	default:
		return false
	}
	return true
}

// Normalize trims free-text fields and restores catalog defaults for
// unrecognized selection keys. Used when accepting a configuration from an
// untrusted boundary.
func (c *Configuration) Normalize() {
	if !catalog.ValidStyle(c.DiplomaStyle) {
		c.DiplomaStyle = catalog.DefaultStyle
	}
	if !catalog.ValidColor(c.PaperColor) {
		c.PaperColor = catalog.DefaultColor
	}
	if !catalog.ValidEmblemType(c.EmblemType) {
		c.EmblemType = catalog.EmblemTypeGeneric
		c.EmblemValue = catalog.DefaultEmblem
	}
	c.SchoolName = strings.TrimSpace(c.SchoolName)
	c.StudentName = strings.TrimSpace(c.StudentName)
	c.GraduationDate = strings.TrimSpace(c.GraduationDate)
	c.City = strings.TrimSpace(c.City)
	c.State = strings.TrimSpace(c.State)
}
