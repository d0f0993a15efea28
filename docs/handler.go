package docs

import (
	"fmt"
	"net/http"
	"os"

	"github.com/syneto/openapi-themes/brand"
)

// Handler returns an http.Handler that renders the page on every request.
// Pages are values and rendering is pure, so the handler is safe for
// concurrent use without locking.
func Handler(page Page) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html, err := page.Render()
		if err != nil {
			http.Error(w, "docs: render failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	})
}

// SpecHandler serves a raw OpenAPI document as application/json.
func SpecHandler(spec []byte) http.Handler {
	specCopy := append([]byte(nil), spec...)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(specCopy)
	})
}

// SpecHandlerFromFile loads the OpenAPI document from disk and returns a
// handler serving it.
func SpecHandlerFromFile(path string) (http.Handler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docs: read spec %q: %w", path, err)
	}
	return SpecHandler(data), nil
}

// Register mounts one branded page for the tool on its conventional path.
func Register(mux *http.ServeMux, tool Tool, specURL string, cfg brand.Config) {
	mux.Handle(tool.DefaultPath(), Handler(NewPage(tool, specURL, cfg)))
}

// RegisterAll mounts every supported tool on its conventional path.
func RegisterAll(mux *http.ServeMux, specURL string, cfg brand.Config) {
	for _, tool := range Tools {
		Register(mux, tool, specURL, cfg)
	}
}

// RegisterWithSpec mounts every tool plus the OpenAPI document itself under
// DefaultSpecURL.
func RegisterWithSpec(mux *http.ServeMux, spec []byte, cfg brand.Config) {
	mux.Handle(DefaultSpecURL, SpecHandler(spec))
	RegisterAll(mux, DefaultSpecURL, cfg)
}
