package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"diplomabuilder/internal/catalog"
	"diplomabuilder/internal/export"
	"diplomabuilder/internal/preview"
	"diplomabuilder/internal/views/layout"
	"diplomabuilder/internal/wizard"
)

// BuilderView carries everything the builder page needs to render.
type BuilderView struct {
	Config        wizard.Configuration
	Step          int
	Authenticated bool
	AssetBaseURL  string
}

// Builder renders the full builder page.
func Builder(view BuilderView) templ.Component {
	return layout.Page("Diploma Builder", BuilderPartial(view))
}

// BuilderPartial renders the wizard form and preview surface without the
// page shell, for HTMX swaps.
func BuilderPartial(view BuilderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="diploma-builder-container" id="diploma-builder">`); err != nil {
			return err
		}
		if err := progressBar(view.Step).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<form id="diploma-builder-form">`); err != nil {
			return err
		}
		for step := wizard.StepStyle; step <= wizard.MaxStep; step++ {
			if err := formSection(view, step).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := navButtons(view.Step).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</form>`); err != nil {
			return err
		}

		canvas := fmt.Sprintf(`<div class="diploma-preview"><div id="diploma-canvas" data-export-width="%d" data-export-height="%d">`,
			export.CanvasWidth, export.CanvasHeight)
		if _, err := io.WriteString(w, canvas); err != nil {
			return err
		}
		previewComponent := preview.Component(view.Config, preview.Options{
			AssetBaseURL: view.AssetBaseURL,
			Watermark:    !view.Authenticated,
		})
		if err := previewComponent.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div></div>`); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<div id="loading-overlay" style="display:none;"><div class="spinner"></div></div></div>`)
		return err
	})
}

func progressBar(current int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="progress-steps">`); err != nil {
			return err
		}
		for step := wizard.StepStyle; step <= wizard.MaxStep; step++ {
			class := "step"
			if step == current {
				class = "step active"
			}
			markup := fmt.Sprintf(`<div class="%s" data-step="%d"><div class="step-circle">%d</div><div class="step-label">%s</div></div>`,
				class, step, step, html.EscapeString(wizard.StepLabel(step)))
			if _, err := io.WriteString(w, markup); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func formSection(view BuilderView, step int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		display := "none"
		if step == view.Step {
			display = "block"
		}
		header := fmt.Sprintf(`<div class="form-section" data-step="%d" style="display: %s;"><h3><span class="step-number">%d</span>%s</h3>`,
			step, display, step, html.EscapeString(sectionHeading(step)))
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}

		var err error
		switch step {
		case wizard.StepStyle:
			err = styleOptions(view.Config).Render(ctx, w)
		case wizard.StepColor:
			err = colorOptions(view.Config).Render(ctx, w)
		case wizard.StepEmblem:
			err = emblemOptions(view.Config).Render(ctx, w)
		case wizard.StepDetails:
			err = detailFields(view.Config).Render(ctx, w)
		case wizard.StepReview:
			err = reviewActions().Render(ctx, w)
		}
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

func sectionHeading(step int) string {
	switch step {
	case wizard.StepStyle:
		return "Choose Diploma Style"
	case wizard.StepColor:
		return "Select Paper Color"
	case wizard.StepEmblem:
		return "Choose Emblem"
	case wizard.StepDetails:
		return "Enter Details"
	case wizard.StepReview:
		return "Review & Download"
	}
	return ""
}

func styleOptions(cfg wizard.Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, style := range catalog.Styles() {
			markup := fmt.Sprintf(`<label class="style-option"><input type="radio" name="diploma_style" value="%s"%s>`+
				`<span class="style-name">%s</span><span class="style-description">%s</span></label>`,
				style.Key, checked(cfg.DiplomaStyle == style.Key),
				html.EscapeString(style.Name), html.EscapeString(style.Description))
			if _, err := io.WriteString(w, markup); err != nil {
				return err
			}
		}
		return nil
	})
}

func colorOptions(cfg wizard.Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, color := range catalog.Colors() {
			markup := fmt.Sprintf(`<label class="color-option"><input type="radio" name="paper_color" value="%s"%s>`+
				`<span class="color-swatch" style="background-color: %s;"></span><span class="color-name">%s</span></label>`,
				color.Key, checked(cfg.PaperColor == color.Key), color.Hex, html.EscapeString(color.Name))
			if _, err := io.WriteString(w, markup); err != nil {
				return err
			}
		}
		return nil
	})
}

func emblemOptions(cfg wizard.Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		generic := cfg.EmblemType == catalog.EmblemTypeGeneric

		markup := fmt.Sprintf(`<div class="emblem-type-toggle">`+
			`<label><input type="radio" name="emblem_type" value="%s"%s>Generic Emblem</label>`+
			`<label><input type="radio" name="emblem_type" value="%s"%s>State Seal</label></div>`,
			catalog.EmblemTypeGeneric, checked(generic),
			catalog.EmblemTypeState, checked(!generic))
		if _, err := io.WriteString(w, markup); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div id="generic-emblems"`+hiddenUnless(generic)+`>`); err != nil {
			return err
		}
		for _, emblem := range catalog.GenericEmblems() {
			selected := generic && cfg.EmblemValue == emblem.Key
			option := fmt.Sprintf(`<label class="emblem-option"><input type="radio" name="generic_emblem" value="%s"%s>%s</label>`,
				emblem.Key, checked(selected), html.EscapeString(emblem.Name))
			if _, err := io.WriteString(w, option); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div id="state-emblems"`+hiddenUnless(!generic)+`>`+
			`<select id="state-emblem-select" name="state_emblem"><option value="">Select a state...</option>`); err != nil {
			return err
		}
		for _, state := range catalog.States() {
			selected := ""
			if !generic && cfg.EmblemValue == state.Code {
				selected = ` selected`
			}
			option := fmt.Sprintf(`<option value="%s"%s>%s</option>`, state.Code, selected, html.EscapeString(state.Name))
			if _, err := io.WriteString(w, option); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></div>`)
		return err
	})
}

func detailFields(cfg wizard.Configuration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fields := []struct {
			name        string
			label       string
			placeholder string
			value       string
			maxLen      int
		}{
			{wizard.FieldSchoolName, "School Name *", "e.g. Lincoln High School", cfg.SchoolName, 255},
			{wizard.FieldStudentName, "Student Name (Optional)", "Leave blank for template", cfg.StudentName, 100},
			{wizard.FieldGraduationDate, "Graduation Date *", "e.g. June 1, 2024", cfg.GraduationDate, 100},
			{wizard.FieldCity, "City *", "e.g. Springfield", cfg.City, 100},
			{wizard.FieldState, "State *", "e.g. IL", cfg.State, 100},
		}
		if _, err := io.WriteString(w, `<div class="text-fields">`); err != nil {
			return err
		}
		for _, field := range fields {
			markup := fmt.Sprintf(`<div class="form-group"><label for="%s">%s</label>`+
				`<input type="text" id="%s" name="%s" value="%s" placeholder="%s" maxlength="%d">`+
				`<span class="field-error" data-field="%s"></span></div>`,
				field.name, html.EscapeString(field.label),
				field.name, field.name, html.EscapeString(field.value),
				html.EscapeString(field.placeholder), field.maxLen, field.name)
			if _, err := io.WriteString(w, markup); err != nil {
				return err
			}
		}
		checkbox := fmt.Sprintf(`<div class="form-group"><label><input type="checkbox" name="is_public" value="1"%s>`+
			`Show this diploma in the public gallery</label></div>`, checked(cfg.IsPublic))
		if _, err := io.WriteString(w, checkbox); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func reviewActions() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="review-actions">`+
			`<p>Review your diploma in the preview, then save or download it.</p>`+
			`<button type="button" id="save-diploma" class="btn btn-primary">Save Diploma</button>`+
			`<button type="button" id="download-diploma" class="btn btn-secondary">Download High-Res</button>`+
			`</div>`)
		return err
	})
}

func navButtons(current int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		prevDisabled := ""
		if current == wizard.StepStyle {
			prevDisabled = ` disabled`
		}
		nextStyle := ""
		if current == wizard.MaxStep {
			nextStyle = ` style="display:none;"`
		}
		markup := fmt.Sprintf(`<div class="wizard-nav">`+
			`<button type="button" id="prev-step" class="btn btn-secondary"%s>Previous</button>`+
			`<button type="button" id="next-step" class="btn btn-primary"%s>Next</button></div>`,
			prevDisabled, nextStyle)
		_, err := io.WriteString(w, markup)
		return err
	})
}

func checked(on bool) string {
	if on {
		return ` checked`
	}
	return ""
}

func hiddenUnless(visible bool) string {
	if visible {
		return ""
	}
	return ` style="display:none;"`
}
