package docs

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/syneto/openapi-themes/brand"
)

// toolLabels name the tools on the aggregate index page.
var toolLabels = map[Tool]string{
	RapiDoc:   "RapiDoc",
	SwaggerUI: "Swagger UI",
	ReDoc:     "ReDoc",
	Elements:  "Stoplight Elements",
	Scalar:    "Scalar",
}

// Manager registers documentation pages on a mux and keeps track of them so
// an aggregate index page can list every mounted endpoint. Methods chain:
//
//	docs.NewManager(mux, "/openapi.json", cfg).AddAll().AddIndex("/")
type Manager struct {
	mux         *http.ServeMux
	brand       brand.Config
	specURL     string
	endpoints   map[Tool]string
	description template.HTML
}

// NewManager builds a manager over the given mux. An empty specURL falls
// back to DefaultSpecURL.
func NewManager(mux *http.ServeMux, specURL string, cfg brand.Config) *Manager {
	if specURL == "" {
		specURL = DefaultSpecURL
	}
	return &Manager{
		mux:       mux,
		brand:     cfg,
		specURL:   specURL,
		endpoints: make(map[Tool]string),
	}
}

// WithDescription sets a Markdown intro rendered on the index page.
func (m *Manager) WithDescription(markdown string) *Manager {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		// Malformed markdown degrades to escaped plain text.
		m.description = template.HTML("<p>" + html.EscapeString(markdown) + "</p>")
		return m
	}
	m.description = template.HTML(buf.String())
	return m
}

func (m *Manager) add(tool Tool, path string) *Manager {
	if path == "" {
		path = tool.DefaultPath()
	}
	m.mux.Handle(path, Handler(NewPage(tool, m.specURL, m.brand)))
	m.endpoints[tool] = path
	return m
}

// AddRapiDoc mounts a RapiDoc page; an empty path means /docs.
func (m *Manager) AddRapiDoc(path string) *Manager { return m.add(RapiDoc, path) }

// AddSwagger mounts a Swagger UI page; an empty path means /swagger.
func (m *Manager) AddSwagger(path string) *Manager { return m.add(SwaggerUI, path) }

// AddReDoc mounts a ReDoc page; an empty path means /redoc.
func (m *Manager) AddReDoc(path string) *Manager { return m.add(ReDoc, path) }

// AddElements mounts a Stoplight Elements page; an empty path means /elements.
func (m *Manager) AddElements(path string) *Manager { return m.add(Elements, path) }

// AddScalar mounts a Scalar page; an empty path means /scalar.
func (m *Manager) AddScalar(path string) *Manager { return m.add(Scalar, path) }

// AddAll mounts every tool on its conventional path.
func (m *Manager) AddAll() *Manager {
	for _, tool := range Tools {
		m.add(tool, "")
	}
	return m
}

// Endpoints returns the registered tool paths.
func (m *Manager) Endpoints() map[Tool]string {
	out := make(map[Tool]string, len(m.endpoints))
	for tool, path := range m.endpoints {
		out[tool] = path
	}
	return out
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style>
{{.Style}}
    </style>
</head>
<body>
    <main class="syneto-docs-index">
        <h1>{{.Title}}</h1>
{{if .Description}}        <section class="syneto-docs-intro">{{.Description}}</section>
{{end}}        <ul>
{{range .Entries}}            <li><a href="{{.Path}}">{{.Label}}</a><span>{{.Path}}</span></li>
{{end}}        </ul>
    </main>
</body>
</html>
`))

// AddIndex mounts an aggregate page listing the registered endpoints. The
// page is rendered per request, so tools added after AddIndex still show up.
func (m *Manager) AddIndex(path string) *Manager {
	if path == "" {
		path = "/"
	}
	m.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		page, err := m.renderIndex()
		if err != nil {
			http.Error(w, "docs: render index: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})
	return m
}

type indexEntry struct {
	Label string
	Path  string
}

func (m *Manager) renderIndex() (string, error) {
	var entries []indexEntry
	for _, tool := range Tools {
		if path, ok := m.endpoints[tool]; ok {
			entries = append(entries, indexEntry{Label: toolLabels[tool], Path: path})
		}
	}

	var out strings.Builder
	err := indexTemplate.Execute(&out, struct {
		Title       string
		Style       template.CSS
		Description template.HTML
		Entries     []indexEntry
	}{
		Title:       m.brand.PageTitle(),
		Style:       template.CSS(m.indexCSS()),
		Description: m.description,
		Entries:     entries,
	})
	if err != nil {
		return "", fmt.Errorf("docs: render index: %w", err)
	}
	return out.String(), nil
}

func (m *Manager) indexCSS() string {
	return fmt.Sprintf(`%s

body {
    margin: 0;
    font-family: %s;
    background: %s;
    color: %s;
}

.syneto-docs-index {
    max-width: 640px;
    margin: 0 auto;
    padding: 4rem 1.5rem;
}

.syneto-docs-index h1 {
    color: %s;
}

.syneto-docs-index ul {
    list-style: none;
    padding: 0;
}

.syneto-docs-index li {
    display: flex;
    justify-content: space-between;
    padding: 0.75rem 1rem;
    margin-bottom: 0.5rem;
    background: %s;
    border-radius: 6px;
}

.syneto-docs-index a {
    color: %s;
    font-weight: 600;
    text-decoration: none;
}

.syneto-docs-index a:hover {
    color: %s;
}

.syneto-docs-index li span {
    color: %s;
    font-family: %s;
}`, m.brand.CSSVariables(), m.brand.RegularFont, m.brand.BackgroundColor,
		m.brand.TextColor, m.brand.PrimaryColor, m.brand.HeaderColor,
		m.brand.PrimaryColor, m.brand.NavAccentColor, m.brand.NavTextColor,
		m.brand.MonoFont)
}
