// Package gindocs adapts the branded documentation pages to Gin routers.
package gindocs

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/syneto/openapi-themes/brand"
	"github.com/syneto/openapi-themes/docs"
)

// Handler adapts a documentation page to Gin.
func Handler(page docs.Page) gin.HandlerFunc {
	return gin.WrapH(docs.Handler(page))
}

// Register attaches a GET handler for the tool on its conventional path.
func Register(router gin.IRoutes, tool docs.Tool, specURL string, cfg brand.Config) {
	router.GET(tool.DefaultPath(), Handler(docs.NewPage(tool, specURL, cfg)))
}

// RegisterAll mounts every supported tool on its conventional path.
func RegisterAll(router gin.IRoutes, specURL string, cfg brand.Config) {
	for _, tool := range docs.Tools {
		Register(router, tool, specURL, cfg)
	}
}

// RegisterWithSpec serves the OpenAPI document itself alongside the pages.
func RegisterWithSpec(router gin.IRoutes, spec []byte, cfg brand.Config) {
	router.GET(docs.DefaultSpecURL, gin.WrapH(docs.SpecHandler(spec)))
	RegisterAll(router, docs.DefaultSpecURL, cfg)
}

// RegisterFile loads an OpenAPI document from disk and mounts the pages.
func RegisterFile(router gin.IRoutes, path string, cfg brand.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gindocs: read spec %q: %w", path, err)
	}
	RegisterWithSpec(router, data, cfg)
	return nil
}
