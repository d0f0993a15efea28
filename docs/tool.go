package docs

import (
	"fmt"

	"github.com/syneto/openapi-themes/brand"
)

// Tool identifies one of the supported documentation front-ends.
type Tool string

const (
	RapiDoc   Tool = "rapidoc"
	SwaggerUI Tool = "swagger"
	ReDoc     Tool = "redoc"
	Elements  Tool = "elements"
	Scalar    Tool = "scalar"
)

// Tools lists every supported tool in registration order.
var Tools = []Tool{RapiDoc, SwaggerUI, ReDoc, Elements, Scalar}

// DefaultPath returns the conventional mount path for the tool.
func (t Tool) DefaultPath() string {
	if t == RapiDoc {
		return "/docs"
	}
	return "/" + string(t)
}

// variant isolates everything tool-specific: the base page builder, the
// default option set, the theme CSS, the loader script and the wrapper
// marker used to position the loading overlay.
type variant struct {
	// base renders the unbranded page around the tool's CDN assets.
	base func(p Page) (string, error)
	// defaults are the tool options applied between the brand values and
	// the caller's overrides.
	defaults map[string]string
	// themeCSS emits the tool-specific selector overrides.
	themeCSS func(cfg brand.Config) string
	// script emits the load/error/timeout handler.
	script func(cfg brand.Config) string
	// marker is the substring of the base page that gets wrapped in the
	// positioning container; empty when the tool needs no wrapping.
	marker string
	// containerClass names the positioning container div.
	containerClass string
}

var variants = map[Tool]variant{
	RapiDoc: {
		base:           rapidocBase,
		defaults:       rapidocDefaults,
		themeCSS:       rapidocThemeCSS,
		script:         rapidocScript,
		marker:         "<rapi-doc",
		containerClass: "syneto-rapidoc-container",
	},
	SwaggerUI: {
		base:           swaggerBase,
		defaults:       swaggerDefaults,
		themeCSS:       swaggerThemeCSS,
		script:         swaggerScript,
		marker:         `<div id="swagger-ui">`,
		containerClass: "syneto-swagger-container",
	},
	ReDoc: {
		base:           redocBase,
		defaults:       redocDefaults,
		themeCSS:       redocThemeCSS,
		script:         redocScript,
		marker:         `<div id="redoc-container">`,
		containerClass: "syneto-redoc-container",
	},
	Elements: {
		base:           elementsBase,
		defaults:       elementsDefaults,
		themeCSS:       elementsThemeCSS,
		script:         elementsScript,
		marker:         "<elements-api",
		containerClass: "syneto-elements-container",
	},
	Scalar: {
		base:           scalarBase,
		defaults:       scalarDefaults,
		themeCSS:       scalarThemeCSS,
		script:         scalarScript,
		marker:         `<div id="scalar-app">`,
		containerClass: "syneto-scalar-container",
	},
}

func variantFor(t Tool) (variant, error) {
	v, ok := variants[t]
	if !ok {
		return variant{}, fmt.Errorf("docs: unknown tool %q", t)
	}
	return v, nil
}
