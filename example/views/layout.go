package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Title is the document title of every page.
const Title = "hxfields-examples"

// NavLink is a single entry in the page header.
type NavLink struct {
	Href  string
	Label string
}

// Nav lists the example pages in header order.
var Nav = []NavLink{
	{Href: "/examples/hx-location", Label: "HX-Location"},
	{Href: "/examples/hx-reswap", Label: "HX-Reswap"},
	{Href: "/examples/hx-trigger", Label: "HX-Trigger"},
	{Href: "/examples/hx-prompt", Label: "HX-Prompt"},
	{Href: "/examples/hx-push-url", Label: "HX-Push-Url"},
}

// Layout wraps body in the shared HTML document.
func Layout(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<!DOCTYPE html>
<html>
  <head>
    <title>`+Title+`</title>
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css">
    <script src="https://unpkg.com/htmx.org@2.0.2"></script>
  </head>
  <body>
    <header class="container">
      <nav>
        <ul>
`); err != nil {
			return err
		}
		for _, l := range Nav {
			if err := write(w, `          <li><a href="`, templ.EscapeString(l.Href), `">`, templ.EscapeString(l.Label), "</a></li>\n"); err != nil {
				return err
			}
		}
		if err := write(w, `        </ul>
      </nav>
    </header>
    <main class="container">
`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return write(w, `
    </main>
  </body>
</html>
`)
	})
}

// section renders the heading, description and controls shared by example pages.
func section(heading, description string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, "<div>\n  <h2>", templ.EscapeString(heading), "</h2>\n  <p>", templ.EscapeString(description), "</p>\n  <div>\n"); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		return write(w, "\n  </div>\n</div>")
	})
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
