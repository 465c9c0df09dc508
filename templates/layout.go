// Package templates contains the templ components and their view-model
// structs. Components are hand-written against the templ runtime; handlers
// render either a full page or an HTMX content fragment.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ActiveMachine is the machine currently pinned via the header selector.
type ActiveMachine struct {
	ID   string
	Name string
}

// MachineSelectorItem is one entry of the header machine dropdown.
type MachineSelectorItem struct {
	ID       string
	Name     string
	IsActive bool
}

// HeaderData feeds the page header on every full-page render.
type HeaderData struct {
	ActiveMachine *ActiveMachine
	Machines      []MachineSelectorItem
}

// Layout wraps a content component with the HTML shell, header and the
// toast/HTMX scripts.
func Layout(title string, header HeaderData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := pageHeader(header).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>
<div id="toast-container"></div>
<script src="/static/toast.js"></script>
</body>
</html>
`); err != nil {
			return err
		}
		return nil
	})
}

// pageHeader renders the top bar with the machine selector dropdown.
func pageHeader(data HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="topbar">
<a href="/machines" class="brand">Mitsui Seiki — Quote Builder</a>
<nav class="machine-selector">
`); err != nil {
			return err
		}
		if data.ActiveMachine != nil {
			if _, err := fmt.Fprintf(w, `<span class="active-machine">%s</span>
<button hx-post="/machines/deactivate" hx-swap="none">Clear</button>
`, templ.EscapeString(data.ActiveMachine.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<ul class="machine-dropdown">
`); err != nil {
			return err
		}
		for _, m := range data.Machines {
			activeClass := ""
			if m.IsActive {
				activeClass = ` class="is-active"`
			}
			if _, err := fmt.Fprintf(w, `<li%s><button hx-post="/machines/%s/activate" hx-swap="none">%s</button></li>
`, activeClass, templ.EscapeString(m.ID), templ.EscapeString(m.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>
</nav>
</header>
`); err != nil {
			return err
		}
		return nil
	})
}
