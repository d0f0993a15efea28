package gindocs

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/syneto/openapi-themes/brand"
	"github.com/syneto/openapi-themes/docs"
)

func TestRegisterWithSpec(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterWithSpec(router, []byte(`{"openapi":"3.0.3"}`), brand.DefaultConfig())

	for _, path := range []string{"/docs", "/swagger", "/redoc", "/elements", "/scalar", "/openapi.json"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestHandlerRendersPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/docs", Handler(docs.NewPage(docs.RapiDoc, "/openapi.json", brand.DefaultConfig())))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "<rapi-doc") {
		t.Fatal("response missing rapi-doc element")
	}
}

func TestRegisterFileMissingSpec(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if err := RegisterFile(router, "testdata/does-not-exist.json", brand.DefaultConfig()); err == nil {
		t.Fatal("expected error for missing spec file")
	}
}
