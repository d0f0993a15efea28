// Package fiberdocs adapts the branded documentation pages to Fiber apps.
package fiberdocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/syneto/openapi-themes/brand"
	"github.com/syneto/openapi-themes/docs"
)

// Handler adapts a documentation page to Fiber.
func Handler(page docs.Page) fiber.Handler {
	return adaptor.HTTPHandler(docs.Handler(page))
}

// Register attaches a GET handler for the tool on its conventional path.
func Register(app *fiber.App, tool docs.Tool, specURL string, cfg brand.Config) {
	app.Get(tool.DefaultPath(), Handler(docs.NewPage(tool, specURL, cfg)))
}

// RegisterAll mounts every supported tool on its conventional path.
func RegisterAll(app *fiber.App, specURL string, cfg brand.Config) {
	for _, tool := range docs.Tools {
		Register(app, tool, specURL, cfg)
	}
}

// RegisterWithSpec serves the OpenAPI document itself alongside the pages.
func RegisterWithSpec(app *fiber.App, spec []byte, cfg brand.Config) {
	app.Get(docs.DefaultSpecURL, adaptor.HTTPHandler(docs.SpecHandler(spec)))
	RegisterAll(app, docs.DefaultSpecURL, cfg)
}

// RegisterFile loads an OpenAPI document from disk and mounts the pages.
func RegisterFile(app *fiber.App, path string, cfg brand.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fiberdocs: read spec %q: %w", path, err)
	}
	RegisterWithSpec(app, data, cfg)
	return nil
}

// RegisterDefault loads openapi.json from the module root and mounts the
// standard routes.
func RegisterDefault(app *fiber.App, cfg brand.Config) error {
	path, err := defaultSpecPath()
	if err != nil {
		return err
	}
	return RegisterFile(app, path, cfg)
}

func defaultSpecPath() (string, error) {
	root, err := findModuleRoot(".")
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("fiberdocs: resolve workspace root: %w", err)
		}
	}
	return filepath.Join(root, "openapi.json"), nil
}

func findModuleRoot(start string) (string, error) {
	abspath, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	dir := abspath
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("fiberdocs: go.mod not found above %s", start)
}
