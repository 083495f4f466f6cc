package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/web/routepath"
)

// HomeFragment renders the landing page body.
func HomeFragment(identity *access.Identity) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<h1>Task Tracker</h1><p>A tiered task tracker. Anyone can browse the public page; sign in to manage your tasks.</p>`,
		); err != nil {
			return err
		}
		if identity == nil {
			_, err := fmt.Fprintf(w,
				`<p><a href="%s">Log in</a> to get started.</p>`, routepath.Login)
			return err
		}
		_, err := fmt.Fprintf(w,
			`<p>Welcome back, <strong>%s</strong>. Head to your <a href="%s">dashboard</a>.</p>`,
			templ.EscapeString(identity.Username), routepath.Dashboard)
		return err
	})
}

// PublicFragment renders the unrestricted public page body.
func PublicFragment() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<h1>Public Page</h1><p>This page is open to everyone, no account required.</p>`)
		return err
	})
}

// LoginFragment renders the login form, optionally with a failure notice.
func LoginFragment(errorMessage string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Login</h1>`); err != nil {
			return err
		}
		if errorMessage != "" {
			if _, err := fmt.Fprintf(w,
				`<p class="error" role="alert">%s</p>`, templ.EscapeString(errorMessage)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s">`+
				`<label>Username <input type="text" name="username" required autofocus></label>`+
				`<label>Password <input type="password" name="password" required></label>`+
				`<button type="submit">Log in</button></form>`,
			routepath.Login)
		return err
	})
}

// AccessDeniedFragment renders the access denied notice.
func AccessDeniedFragment() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>Access Denied</h1><p>Your account tier does not allow this page.</p>`+
				`<p><a href="%s">Back to home</a></p>`,
			routepath.Root)
		return err
	})
}

// NotFoundFragment renders the 404 page body.
func NotFoundFragment() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>%d Not Found</h1><p>The page you asked for does not exist.</p>`+
				`<p><a href="%s">Back to home</a></p>`,
			http.StatusNotFound, routepath.Root)
		return err
	})
}

// ProfileFragment renders the caller's account details.
func ProfileFragment(identity access.Identity) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>Profile</h1><dl class="profile">`+
				`<dt>Username</dt><dd>%s</dd>`+
				`<dt>Tier</dt><dd>%s</dd>`+
				`</dl>`,
			templ.EscapeString(identity.Username),
			templ.EscapeString(identity.Tier.String()),
		)
		return err
	})
}
