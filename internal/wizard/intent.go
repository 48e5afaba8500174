package wizard

// Intent is a typed description of a single user interaction with the
// builder form. UI events produce intents; the Controller consumes them.
type Intent interface {
	isIntent()
}

// SelectStyle picks a diploma style from the catalog.
type SelectStyle struct {
	Key string
}

// SelectPaperColor picks a paper color from the catalog.
type SelectPaperColor struct {
	Key string
}

// SelectEmblemType switches between generic and state emblems.
type SelectEmblemType struct {
	Type string
}

// SelectEmblem picks an emblem value for the current emblem type.
type SelectEmblem struct {
	Value string
}

// UpdateField edits one of the free-text fields.
type UpdateField struct {
	Name  string
	Value string
}

// SetPublic toggles gallery visibility.
type SetPublic struct {
	Public bool
}

// AdvanceStep moves the wizard forward one step.
type AdvanceStep struct{}

// RetreatStep moves the wizard back one step.
type RetreatStep struct{}

// JumpToStep moves the wizard to a specific step, clamped to valid bounds.
type JumpToStep struct {
	Step int
}

func (SelectStyle) isIntent()      {}
func (SelectPaperColor) isIntent() {}
func (SelectEmblemType) isIntent() {}
func (SelectEmblem) isIntent()     {}
func (UpdateField) isIntent()      {}
func (SetPublic) isIntent()        {}
func (AdvanceStep) isIntent()      {}
func (RetreatStep) isIntent()      {}
func (JumpToStep) isIntent()       {}
