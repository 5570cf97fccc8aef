// Package web provides infrastructure for serving server-rendered pages
// with pre-parsed Go templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

// TemplateSet holds pre-parsed templates. Parsing happens once at startup,
// enabling fail-fast behavior and avoiding per-request parsing overhead.
type TemplateSet struct {
	templates *template.Template
}

// NewTemplateSet parses all templates matching glob from the given
// filesystem, with funcs available to every template.
func NewTemplateSet(fsys embed.FS, glob string, funcs template.FuncMap) (*TemplateSet, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(fsys, glob)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateSet{templates: t}, nil
}

// Render executes the named template with the given data.
func (ts *TemplateSet) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return ts.templates.ExecuteTemplate(w, name, data)
}
