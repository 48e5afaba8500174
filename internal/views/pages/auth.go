package pages

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"diplomabuilder/internal/views/layout"
)

// Login renders the full sign-in page.
func Login(message, email string) templ.Component {
	return layout.Page("Sign In - Diploma Builder", LoginPartial(message, email))
}

// LoginPartial renders the sign-in form for HTMX swaps.
func LoginPartial(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Notice("error", message).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form method="post" action="/login" class="auth-form">`+
			`<div class="form-group"><label for="email">Email</label>`+
			`<input type="email" id="email" name="email" value="`+html.EscapeString(email)+`" required></div>`+
			`<div class="form-group"><label for="password">Password</label>`+
			`<input type="password" id="password" name="password" required></div>`+
			`<button type="submit" class="btn btn-primary">Sign In</button>`+
			`<p>New here? <a href="/signup">Create an account</a> or <a href="/builder">continue as a guest</a>.</p>`+
			`</form>`)
		return err
	})
}

// Signup renders the full registration page.
func Signup(message, name, email string) templ.Component {
	return layout.Page("Create Account - Diploma Builder", SignupPartial(message, name, email))
}

// SignupPartial renders the registration form for HTMX swaps.
func SignupPartial(message, name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Notice("error", message).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<form method="post" action="/signup" class="auth-form">`+
			`<div class="form-group"><label for="name">Name</label>`+
			`<input type="text" id="name" name="name" value="`+html.EscapeString(name)+`"></div>`+
			`<div class="form-group"><label for="email">Email</label>`+
			`<input type="email" id="email" name="email" value="`+html.EscapeString(email)+`" required></div>`+
			`<div class="form-group"><label for="password">Password</label>`+
			`<input type="password" id="password" name="password" required></div>`+
			`<div class="form-group"><label for="confirm_password">Confirm Password</label>`+
			`<input type="password" id="confirm_password" name="confirm_password" required></div>`+
			`<button type="submit" class="btn btn-primary">Create Account</button>`+
			`</form>`)
		return err
	})
}
