// Package preview renders diploma artwork markup from a configuration
// snapshot. Rendering is a pure function: the same configuration and options
// always produce byte-identical output, and the whole fragment is replaced on
// every mutation rather than patched.
package preview

import (
	"html"
	"strings"

	"github.com/a-h/templ"

	"diplomabuilder/internal/catalog"
	"diplomabuilder/internal/wizard"
)

// Placeholders substituted for blank fields so the artwork always reads as a
// complete diploma.
const (
	PlaceholderStudent = "[Student Name]"
	PlaceholderSchool  = "[School Name]"
	PlaceholderDate    = "[Date of Graduation]"
	PlaceholderCity    = "[City]"
	PlaceholderState   = "[State]"
)

// Options carries rendering inputs that are not part of the configuration.
type Options struct {
	// AssetBaseURL is the public prefix for emblem assets.
	AssetBaseURL string
	// Watermark overlays a preview watermark; it is a function of session
	// state (unauthenticated users), never of the configuration itself.
	Watermark bool
}

// Render produces the diploma markup fragment for a configuration.
func Render(cfg wizard.Configuration, opts Options) string {
	style := catalog.StyleByKey(cfg.DiplomaStyle)
	color := catalog.ColorByKey(cfg.PaperColor)

	studentName := orPlaceholder(cfg.StudentName, PlaceholderStudent)
	schoolName := orPlaceholder(cfg.SchoolName, PlaceholderSchool)
	graduationDate := orPlaceholder(cfg.GraduationDate, PlaceholderDate)
	city := orPlaceholder(cfg.City, PlaceholderCity)
	state := orPlaceholder(cfg.State, PlaceholderState)

	var b strings.Builder
	b.WriteString(`<div class="diploma-template `)
	b.WriteString(style.Key)
	b.WriteString(`" style="background-color: `)
	b.WriteString(color.Hex)
	b.WriteString(`;">`)

	b.WriteString(emblemMarkup(cfg, opts))

	b.WriteString(`<div class="diploma-header">`)
	b.WriteString(`<div class="diploma-title">High School Diploma</div>`)
	b.WriteString(`<div class="diploma-subtitle">This certifies that</div>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="diploma-body">`)
	b.WriteString(`<div class="diploma-text"><strong>`)
	b.WriteString(html.EscapeString(studentName))
	b.WriteString(`</strong></div>`)
	b.WriteString(`<div class="diploma-text">has satisfactorily completed the prescribed course of study at</div>`)
	b.WriteString(`<div class="school-name">`)
	b.WriteString(html.EscapeString(schoolName))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="diploma-text">and is therefore entitled to this diploma</div>`)
	b.WriteString(`<div class="graduation-date">Dated this `)
	b.WriteString(html.EscapeString(graduationDate))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="location">`)
	b.WriteString(html.EscapeString(city))
	b.WriteString(`, `)
	b.WriteString(html.EscapeString(state))
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)

	if opts.Watermark {
		b.WriteString(`<div class="diploma-watermark">PREVIEW</div>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

// Component wraps the rendered markup as a templ component for embedding in
// page views. The markup is built from catalog-validated keys and escaped
// user text, so raw injection is safe here.
func Component(cfg wizard.Configuration, opts Options) templ.Component {
	return templ.Raw(Render(cfg, opts))
}

// emblemMarkup renders zero, one or two emblem slots. A missing emblem value
// yields no markup at all; a broken image is handled at display time by the
// declared fallback hook, which swaps in the first three characters of the
// emblem key.
func emblemMarkup(cfg wizard.Configuration, opts Options) string {
	if cfg.EmblemValue == "" {
		return ""
	}
	if cfg.EmblemType == catalog.EmblemTypeGeneric && !catalog.ValidGenericEmblem(cfg.EmblemValue) {
		return ""
	}
	if cfg.EmblemType == catalog.EmblemTypeState && !catalog.ValidState(cfg.EmblemValue) {
		return ""
	}

	src := catalog.EmblemURL(opts.AssetBaseURL, cfg.EmblemType, cfg.EmblemValue)
	img := `<img src="` + src + `" alt="Emblem" class="diploma-emblem" data-fallback="` +
		html.EscapeString(Initials(cfg.EmblemValue)) + `" onerror="diplomaEmblemFallback(this)">`

	if cfg.EmblemSlots() == 1 {
		return `<div class="diploma-emblems single">` + img + `</div>`
	}
	return `<div class="diploma-emblems">` + img + img + `</div>`
}

// Initials returns the display-time fallback text for a broken emblem image:
// the first three characters of the emblem key.
func Initials(emblemValue string) string {
	if len(emblemValue) <= 3 {
		return emblemValue
	}
	return emblemValue[:3]
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
