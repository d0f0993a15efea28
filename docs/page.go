package docs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/syneto/openapi-themes/brand"
	"github.com/syneto/openapi-themes/htmlinject"
)

// DefaultSpecURL is assumed when a page does not name its OpenAPI document.
const DefaultSpecURL = "/openapi.json"

// Page describes one documentation page. A Page is a value: rendering never
// mutates it, so the same Page may serve concurrent requests.
type Page struct {
	Tool    Tool
	Title   string
	SpecURL string
	Brand   brand.Config

	// Options are caller overrides for tool options. They are applied last:
	// brand-derived values < tool defaults < Options. Value format follows
	// the tool: RapiDoc and Elements take plain HTML attribute strings
	// (`"read"`, `"true"`), while SwaggerUI, ReDoc and Scalar options are
	// emitted into script configuration and must be JS/JSON literals
	// (`"true"`, `"60"`, `"\"list\""`).
	Options map[string]string
}

// NewPage builds a page for the given tool with the standard defaults filled
// in.
func NewPage(tool Tool, specURL string, cfg brand.Config) Page {
	if specURL == "" {
		specURL = DefaultSpecURL
	}
	return Page{
		Tool:    tool,
		Title:   cfg.PageTitle(),
		SpecURL: specURL,
		Brand:   cfg,
	}
}

// withOptions returns a copy of the page with opts merged over its Options.
// The receiver's map is never mutated.
func (p Page) withOptions(opts map[string]string) Page {
	merged := make(map[string]string, len(p.Options)+len(opts))
	for k, v := range p.Options {
		merged[k] = v
	}
	for k, v := range opts {
		merged[k] = v
	}
	p.Options = merged
	return p
}

// Render produces the complete branded HTML document.
func (p Page) Render() (string, error) {
	if p.SpecURL == "" {
		p.SpecURL = DefaultSpecURL
	}
	if p.Title == "" {
		p.Title = p.Brand.PageTitle()
	}
	if err := p.Brand.Validate(); err != nil {
		return "", err
	}
	v, err := variantFor(p.Tool)
	if err != nil {
		return "", err
	}
	base, err := v.base(p)
	if err != nil {
		return "", fmt.Errorf("docs: render %s base page: %w", p.Tool, err)
	}
	return p.brandInto(v, base), nil
}

// RenderFunc produces a base HTML document for a documentation page.
type RenderFunc func() (string, error)

// WithBranding wraps an existing base-page producer so its output passes
// through the same branding pipeline as the built-in pages. It serves
// callers that obtain base HTML from somewhere else entirely.
func WithBranding(tool Tool, base RenderFunc, cfg brand.Config) RenderFunc {
	return func() (string, error) {
		if err := cfg.Validate(); err != nil {
			return "", err
		}
		v, err := variantFor(tool)
		if err != nil {
			return "", err
		}
		html, err := base()
		if err != nil {
			return "", err
		}
		return Page{Tool: tool, Brand: cfg}.brandInto(v, html), nil
	}
}

// brandInto splices the brand style and loader script into a base document.
func (p Page) brandInto(v variant, base string) string {
	return htmlinject.Injection{
		Style:         p.styleFragment(v),
		Script:        p.scriptFragment(v),
		FaviconURL:    p.Brand.FaviconURL,
		WrapperMarker: v.marker,
		WrapperOpen:   `<div class="` + v.containerClass + `">`,
	}.Apply(base)
}

func (p Page) styleFragment(v variant) string {
	var b strings.Builder
	for _, url := range p.Brand.CustomCSSURLs {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", url)
	}
	b.WriteString("<style>\n")
	b.WriteString(p.Brand.CSSVariables())
	b.WriteString("\n\n")
	b.WriteString(p.Brand.LoadingCSS())
	b.WriteString("\n\n")
	b.WriteString(v.themeCSS(p.Brand))
	b.WriteString("\n</style>\n")
	return b.String()
}

func (p Page) scriptFragment(v variant) string {
	var b strings.Builder
	for _, url := range p.Brand.CustomJSURLs {
		fmt.Fprintf(&b, "<script src=\"%s\"></script>\n", url)
	}
	b.WriteString(v.script(p.Brand))
	return b.String()
}

// options merges the tool option maps with a documented precedence: values
// derived from the brand config, then the tool defaults, then the caller's
// explicit overrides.
func (p Page) options(brandDerived, toolDefaults map[string]string) map[string]string {
	merged := make(map[string]string, len(brandDerived)+len(toolDefaults)+len(p.Options))
	for k, v := range brandDerived {
		merged[k] = v
	}
	for k, v := range toolDefaults {
		merged[k] = v
	}
	for k, v := range p.Options {
		merged[k] = v
	}
	return merged
}

// sortedKeys keeps rendered attribute and option lists deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
