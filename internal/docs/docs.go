// Package docs renders a type catalog as a standalone HTML page with a
// client-side filter. The page embeds the catalog as JSON so no server
// is needed.
package docs

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/typeforge/typeforge/pkg/infer"
)

// pageData is the template payload.
type pageData struct {
	Title       string
	Source      string
	Timestamp   string
	RootType    string
	Types       []*infer.RecordType
	CatalogJSON template.JS
}

// Renderer renders catalog documentation pages.
type Renderer struct {
	tmpl *template.Template
}

// New creates a renderer.
func New() (*Renderer, error) {
	tmpl, err := template.New("docs").Funcs(template.FuncMap{
		"kindOf": func(rt *infer.RecordType) string { return string(rt.Kind) },
		"join":   strings.Join,
	}).Parse(docTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing docs template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the HTML document for one parse result.
func (r *Renderer) Render(res *infer.Result, title string) (string, error) {
	if title == "" {
		title = res.Metadata.RootType
	}

	catalog, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("embedding catalog JSON: %w", err)
	}

	var b strings.Builder
	err = r.tmpl.Execute(&b, pageData{
		Title:       title,
		Source:      res.Metadata.Source,
		Timestamp:   res.Metadata.Timestamp,
		RootType:    res.Metadata.RootType,
		Types:       res.Types,
		CatalogJSON: template.JS(catalog),
	})
	if err != nil {
		return "", fmt.Errorf("rendering docs: %w", err)
	}
	return b.String(), nil
}

// WriteFile renders the page and writes it to path.
func (r *Renderer) WriteFile(res *infer.Result, title, path string) error {
	html, err := r.Render(res, title)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing docs to %s: %w", path, err)
	}
	return nil
}
