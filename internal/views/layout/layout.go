// Package layout provides the shared page chrome for the diploma builder.
package layout

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Page wraps body content in the full HTML document shell.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+html.EscapeString(title)+`</title>`+
			`<link rel="stylesheet" href="/assets/css/diploma-builder.css">`+
			`</head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<script src="/assets/js/html2canvas.min.js"></script>`+
			`<script src="/assets/js/diploma-builder.js"></script></body></html>`); err != nil {
			return err
		}
		return nil
	})
}

// Notice renders a transient notification banner. Kind is "success" or
// "error"; auto-dismiss is handled client-side.
func Notice(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := io.WriteString(w, `<div class="diploma-message `+html.EscapeString(kind)+`" data-auto-dismiss="5000">`+
			html.EscapeString(message)+`</div>`)
		return err
	})
}
