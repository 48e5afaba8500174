// Package wizard drives the multi-step diploma builder: a Configuration
// record owned by a Controller that sequences five linearly ordered steps
// (style, paper color, emblem, details, review) and applies typed intents.
package wizard

import "diplomabuilder/internal/catalog"

// Step indices. The wizard always starts at StepStyle; StepReview is the
// terminal step carrying the form actions.
const (
	StepStyle   = 1
	StepColor   = 2
	StepEmblem  = 3
	StepDetails = 4
	StepReview  = 5

	MaxStep = StepReview
)

var stepLabels = map[int]string{
	StepStyle:   "Style",
	StepColor:   "Color",
	StepEmblem:  "Emblem",
	StepDetails: "Details",
	StepReview:  "Review & Download",
}

// Controller owns one Configuration and the current wizard position.
// Transitions happen only through explicit intents; entering a step never
// requires the step's fields to be valid.
type Controller struct {
	config  Configuration
	current int
}

// NewController returns a controller positioned at the first step with a
// default-populated configuration.
func NewController() *Controller {
	return &Controller{
		config:  NewConfiguration(),
		current: StepStyle,
	}
}

// ResumeController returns a controller wrapping an existing configuration,
// still positioned at the first step: wizard position never survives a
// session.
func ResumeController(cfg Configuration) *Controller {
	cfg.Normalize()
	return &Controller{config: cfg, current: StepStyle}
}

// Config returns a snapshot of the current configuration.
func (ctl *Controller) Config() Configuration {
	return ctl.config
}

// Step returns the current step index.
func (ctl *Controller) Step() int {
	return ctl.current
}

// StepLabel returns the display label for the given step.
func StepLabel(step int) string {
	if label, ok := stepLabels[step]; ok {
		return label
	}
	return ""
}

// Progress reports completion as current/max in the range (0, 1].
func (ctl *Controller) Progress() float64 {
	return float64(ctl.current) / float64(MaxStep)
}

// AtFirst reports whether the wizard is on the first step, where the
// "previous" control is disabled.
func (ctl *Controller) AtFirst() bool {
	return ctl.current == StepStyle
}

// AtLast reports whether the wizard is on the review step, where the "next"
// control is replaced by the form actions.
func (ctl *Controller) AtLast() bool {
	return ctl.current == MaxStep
}

// GoToStep moves to step n, clamped to [1, MaxStep].
func (ctl *Controller) GoToStep(n int) {
	if n < StepStyle {
		n = StepStyle
	}
	if n > MaxStep {
		n = MaxStep
	}
	ctl.current = n
}

// Next advances one step. At the last step this is a no-op.
func (ctl *Controller) Next() {
	if ctl.current < MaxStep {
		ctl.current++
	}
}

// Previous retreats one step. At the first step this is a no-op.
func (ctl *Controller) Previous() {
	if ctl.current > StepStyle {
		ctl.current--
	}
}

// Apply consumes a single intent, mutating the configuration or wizard
// position. Unknown selection keys are ignored rather than stored, so the
// configuration can only ever hold catalog-registered values. It returns
// true when the intent changed configuration state that the preview renders.
func (ctl *Controller) Apply(intent Intent) bool {
	switch in := intent.(type) {
	case SelectStyle:
		if !catalog.ValidStyle(in.Key) {
			return false
		}
		ctl.config.DiplomaStyle = in.Key
		return true
	case SelectPaperColor:
		if !catalog.ValidColor(in.Key) {
			return false
		}
		ctl.config.PaperColor = in.Key
		return true
	case SelectEmblemType:
		if !catalog.ValidEmblemType(in.Type) || in.Type == ctl.config.EmblemType {
			return false
		}
		ctl.config.EmblemType = in.Type
		// Switching type invalidates the previous value: generic falls back
		// to the default cap, state requires an explicit selection.
		if in.Type == catalog.EmblemTypeGeneric {
			ctl.config.EmblemValue = catalog.DefaultEmblem
		} else {
			ctl.config.EmblemValue = ""
		}
		return true
	case SelectEmblem:
		if ctl.config.EmblemType == catalog.EmblemTypeGeneric && !catalog.ValidGenericEmblem(in.Value) {
			return false
		}
		if ctl.config.EmblemType == catalog.EmblemTypeState && !catalog.ValidState(in.Value) {
			return false
		}
		ctl.config.EmblemValue = in.Value
		return true
	case UpdateField:
		return ctl.config.setField(in.Name, in.Value)
	case SetPublic:
		ctl.config.IsPublic = in.Public
		return true
	case AdvanceStep:
		ctl.Next()
		return false
	case RetreatStep:
		ctl.Previous()
		return false
	case JumpToStep:
		ctl.GoToStep(in.Step)
		return false
	}
	return false
}
