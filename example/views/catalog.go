package views

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/hxfields/pkg/sanitizer"
)

// Example is an entry in the index catalog.
// Description is markdown.
type Example struct {
	Href        string
	Title       string
	Description string
}

// Catalog lists the examples shown on the index page.
var Catalog = []Example{
	{
		Href:        "/examples/hx-location",
		Title:       "HX-Location",
		Description: "Client-side redirect **without** a full page reload, driven by the `HX-Location` response header.",
	},
	{
		Href:        "/examples/hx-reswap",
		Title:       "HX-Reswap",
		Description: "The server picks the target and swap strategy with `HX-Retarget` and `HX-Reswap`.",
	},
	{
		Href:        "/examples/hx-trigger",
		Title:       "HX-Trigger",
		Description: "A response header fires a client event carrying a JSON detail. See [the htmx docs](https://htmx.org/headers/hx-trigger/).",
	},
	{
		Href:        "/examples/hx-prompt",
		Title:       "HX-Prompt",
		Description: "The answer to `hx-prompt` arrives in the `HX-Prompt` request header.",
	},
	{
		Href:        "/examples/hx-push-url",
		Title:       "HX-Push-Url",
		Description: "The server decides whether a swap adds a browser history entry, or sends `false` to skip it.",
	},
}

// ErrEmptyMarkdown is returned when markdown renders to no visible HTML.
var ErrEmptyMarkdown = errors.New("views: markdown rendered empty")

// RenderMarkdown converts markdown to HTML safe to embed in a page.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := sanitizer.SanitizeHTML(buf.String())
	if src != "" && out == "" {
		return "", ErrEmptyMarkdown
	}
	return out, nil
}

type renderedExample struct {
	Example
	html string
}

// renderedCatalog renders the catalog markdown once.
var renderedCatalog = sync.OnceValues(func() ([]renderedExample, error) {
	out := make([]renderedExample, 0, len(Catalog))
	for _, ex := range Catalog {
		html, err := RenderMarkdown(ex.Description)
		if err != nil {
			return nil, err
		}
		out = append(out, renderedExample{Example: ex, html: html})
	}
	return out, nil
})

// CatalogCheck is a readiness check that fails if the catalog cannot be rendered.
func CatalogCheck() func(context.Context) error {
	return func(context.Context) error {
		_, err := renderedCatalog()
		return err
	}
}

// Index is the landing page.
func Index() templ.Component {
	return Layout(templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		examples, err := renderedCatalog()
		if err != nil {
			return err
		}
		if err := write(w, "<div>\n  <h2>Select an example</h2>\n"); err != nil {
			return err
		}
		for _, ex := range examples {
			if err := write(w, `  <article><a href="`, templ.EscapeString(ex.Href), `">`, templ.EscapeString(ex.Title), "</a>\n"); err != nil {
				return err
			}
			if err := templ.Raw(ex.html).Render(ctx, w); err != nil {
				return err
			}
			if err := write(w, "  </article>\n"); err != nil {
				return err
			}
		}
		return write(w, "</div>")
	}))
}
