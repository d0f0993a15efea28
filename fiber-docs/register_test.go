package fiberdocs

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/syneto/openapi-themes/brand"
)

func TestRegisterWithSpec(t *testing.T) {
	app := fiber.New()
	RegisterWithSpec(app, []byte(`{"openapi":"3.0.3"}`), brand.DefaultConfig())

	for _, path := range []string{"/docs", "/swagger", "/redoc", "/elements", "/scalar", "/openapi.json"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, resp.StatusCode)
		}
		_ = resp.Body.Close()
	}
}

func TestRegisteredPageContent(t *testing.T) {
	app := fiber.New()
	RegisterWithSpec(app, []byte(`{"openapi":"3.0.3"}`), brand.DefaultConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "<rapi-doc") {
		t.Fatal("response missing rapi-doc element")
	}
	if !strings.Contains(string(body), "--syneto-primary-color") {
		t.Fatal("response missing brand CSS variables")
	}
}

func TestRegisterFileMissingSpec(t *testing.T) {
	app := fiber.New()
	if err := RegisterFile(app, "testdata/does-not-exist.json", brand.DefaultConfig()); err == nil {
		t.Fatal("expected error for missing spec file")
	}
}
