// Package templates renders the server-side HTML surface.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/web/routepath"
)

// Layout wraps child content in the application shell with tier-aware navigation.
func Layout(title string, identity *access.Identity) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title>`+
				`<link rel="stylesheet" href="/static/style.css">`+
				`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
				`<script src="/static/app.js" defer></script>`+
				`</head><body>`,
			templ.EscapeString(title),
		); err != nil {
			return err
		}
		if err := nav(identity).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func nav(identity *access.Identity) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<nav class="topnav"><a href="%s">Home</a> <a href="%s">Public</a>`,
			routepath.Root, routepath.Public,
		); err != nil {
			return err
		}
		if identity == nil {
			_, err := fmt.Fprintf(w, ` <a href="%s">Login</a></nav>`, routepath.Login)
			return err
		}
		if identity.Tier.Satisfies(access.TierFreeUser) {
			if _, err := fmt.Fprintf(w, ` <a href="%s">Dashboard</a>`, routepath.Dashboard); err != nil {
				return err
			}
		}
		if identity.Tier.Satisfies(access.TierPremiumUser) {
			if _, err := fmt.Fprintf(w, ` <a href="%s">Profile</a>`, routepath.Profile); err != nil {
				return err
			}
		}
		if identity.Tier.Satisfies(access.TierAdmin) {
			if _, err := fmt.Fprintf(w,
				` <a href="%s">All Tasks</a> <a href="%s">Admin</a>`,
				routepath.TodosAll, routepath.Admin,
			); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			` <span class="nav-user">%s (%s)</span>`+
				`<form class="inline" method="post" action="%s"><button type="submit">Logout</button></form></nav>`,
			templ.EscapeString(identity.Username),
			templ.EscapeString(identity.Tier.String()),
			routepath.Logout,
		)
		return err
	})
}

// Page composes a layout-wrapped page around a content fragment.
func Page(title string, identity *access.Identity, fragment templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(title, identity).Render(templ.WithChildren(ctx, fragment), w)
	})
}
