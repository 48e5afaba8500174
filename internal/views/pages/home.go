package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"diplomabuilder/internal/views/layout"
)

// Home renders the landing page.
func Home(authenticated bool) templ.Component {
	return layout.Page("Diploma Builder", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		accountLink := `<a href="/login" class="btn btn-secondary">Sign In</a>`
		if authenticated {
			accountLink = `<a href="/logout" class="btn btn-secondary">Sign Out</a>`
		}
		_, err := io.WriteString(w, `<div class="landing">`+
			`<h1>Design Your High School Diploma</h1>`+
			`<p>Pick a style, choose your colors and emblem, enter your details, and download a print-ready diploma.</p>`+
			`<a href="/builder" class="btn btn-primary">Start Building</a>`+
			accountLink+
			`</div>`)
		return err
	}))
}
