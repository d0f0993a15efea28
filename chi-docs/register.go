// Package chidocs adapts the branded documentation pages to chi routers.
package chidocs

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/syneto/openapi-themes/brand"
	"github.com/syneto/openapi-themes/docs"
)

// Handler exposes the underlying net/http handler for advanced routing setups.
func Handler(page docs.Page) http.Handler {
	return docs.Handler(page)
}

// Register wires one documentation page on its conventional path.
func Register(router chi.Router, tool docs.Tool, specURL string, cfg brand.Config) {
	router.Get(tool.DefaultPath(), docs.Handler(docs.NewPage(tool, specURL, cfg)).ServeHTTP)
}

// RegisterAll mounts every supported tool on its conventional path.
func RegisterAll(router chi.Router, specURL string, cfg brand.Config) {
	for _, tool := range docs.Tools {
		Register(router, tool, specURL, cfg)
	}
}

// RegisterWithSpec serves the OpenAPI document itself alongside the pages.
func RegisterWithSpec(router chi.Router, spec []byte, cfg brand.Config) {
	router.Get(docs.DefaultSpecURL, docs.SpecHandler(spec).ServeHTTP)
	RegisterAll(router, docs.DefaultSpecURL, cfg)
}

// RegisterFile loads an OpenAPI document from disk and mounts the pages.
func RegisterFile(router chi.Router, path string, cfg brand.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("chidocs: read spec %q: %w", path, err)
	}
	RegisterWithSpec(router, data, cfg)
	return nil
}
