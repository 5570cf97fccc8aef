// Package scalar serves the Scalar API reference UI against the published
// OpenAPI document.
package scalar

import (
	"embed"
	"html/template"
	"net/http"

	"rukun/pkg/module"
)

//go:embed index.html
var staticFS embed.FS

// NewModule creates a module that serves the API reference UI at basePath,
// pointed at the spec document published at specURL.
func NewModule(basePath, specURL string) *module.Module {
	router := buildRouter(specURL)
	return module.New(basePath, router)
}

func buildRouter(specURL string) http.Handler {
	mux := http.NewServeMux()

	tmpl := template.Must(template.ParseFS(staticFS, "index.html"))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		tmpl.Execute(w, map[string]string{"SpecURL": specURL})
	})

	return mux
}
