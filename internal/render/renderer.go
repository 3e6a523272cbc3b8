package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"product-catalog/internal/catalog"
)

//go:embed templates/*.html
var templates embed.FS

// Renderer renders catalog pages to HTML
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded page template
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/catalog.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page for v to w. Nothing is written when rendering fails.
func (r *Renderer) Render(w io.Writer, c *catalog.Catalog, v *catalog.View) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "catalog.html", NewPage(c, v)); err != nil {
		return fmt.Errorf("failed to render catalog page: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write catalog page: %w", err)
	}
	return nil
}
