package docs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/syneto/openapi-themes/brand"
)

func TestManagerAddAll(t *testing.T) {
	mux := http.NewServeMux()
	m := NewManager(mux, "/openapi.json", brand.DefaultConfig()).AddAll()

	endpoints := m.Endpoints()
	if len(endpoints) != len(Tools) {
		t.Fatalf("expected %d endpoints, got %d", len(Tools), len(endpoints))
	}
	if endpoints[RapiDoc] != "/docs" {
		t.Fatalf("unexpected rapidoc path %q", endpoints[RapiDoc])
	}

	for _, path := range endpoints {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestManagerChaining(t *testing.T) {
	mux := http.NewServeMux()
	m := NewManager(mux, "", brand.DefaultConfig())

	if got := m.AddRapiDoc("/custom-docs"); got != m {
		t.Fatal("AddRapiDoc must return the manager for chaining")
	}
	if m.Endpoints()[RapiDoc] != "/custom-docs" {
		t.Fatalf("custom path not tracked: %v", m.Endpoints())
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/custom-docs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), DefaultSpecURL) {
		t.Fatal("empty spec URL should fall back to the default")
	}
}

func TestManagerIndexPage(t *testing.T) {
	mux := http.NewServeMux()
	NewManager(mux, "/openapi.json", brand.DefaultConfig()).
		AddRapiDoc("").
		AddSwagger("").
		AddReDoc("").
		WithDescription("Pick a **documentation** tool.").
		AddIndex("/")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	if err != nil {
		t.Fatalf("index is not parseable HTML: %v", err)
	}

	links := map[string]bool{}
	doc.Find(".syneto-docs-index a").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			links[href] = true
		}
	})
	for _, want := range []string{"/docs", "/swagger", "/redoc"} {
		if !links[want] {
			t.Fatalf("index missing link to %s (got %v)", want, links)
		}
	}
	if links["/elements"] || links["/scalar"] {
		t.Fatal("index lists endpoints that were never registered")
	}

	if doc.Find(".syneto-docs-intro strong").Text() != "documentation" {
		t.Fatal("markdown description not rendered")
	}
}

func TestManagerIndexSeesLaterEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	m := NewManager(mux, "/openapi.json", brand.DefaultConfig()).
		AddRapiDoc("").
		AddIndex("/")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if strings.Contains(rec.Body.String(), `href="/scalar"`) {
		t.Fatal("index lists an endpoint before it is registered")
	}

	m.AddScalar("")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rec.Body.String(), `href="/scalar"`) {
		t.Fatal("index missing endpoint registered after AddIndex")
	}
	if !strings.Contains(rec.Body.String(), `href="/docs"`) {
		t.Fatal("index lost a previously registered endpoint")
	}
}

func TestManagerIndexStyling(t *testing.T) {
	mux := http.NewServeMux()
	NewManager(mux, "/openapi.json", brand.DefaultConfig()).AddAll().AddIndex("/index")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "--syneto-primary-color") {
		t.Fatal("index missing brand CSS variables")
	}
	if !strings.Contains(body, brand.PrimaryMagenta) {
		t.Fatal("index missing brand primary color")
	}
}
