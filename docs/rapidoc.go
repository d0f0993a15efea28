package docs

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/syneto/openapi-themes/brand"
)

// RapiDocJSURL is the CDN location of the RapiDoc web component.
const RapiDocJSURL = "https://unpkg.com/rapidoc/dist/rapidoc-min.js"

var rapidocTemplate = template.Must(template.New("rapidoc").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <script type="module" src="{{.JSURL}}"></script>
</head>
<body>
    <rapi-doc spec-url="{{.SpecURL}}"{{.Attrs}}></rapi-doc>
</body>
</html>
`))

// rapidocDefaults are the RapiDoc element attributes applied on top of the
// brand-derived ones.
var rapidocDefaults = map[string]string{
	"render-style":                     "read",
	"schema-style":                     "table",
	"default-schema-tab":               "schema",
	"response-area-height":             "400px",
	"show-info":                        "true",
	"allow-authentication":             "true",
	"allow-server-selection":           "true",
	"allow-api-list-style-selection":   "true",
	"show-header":                      "true",
	"show-components":                  "true",
	"update-route":                     "true",
	"route-prefix":                     "#",
	"sort-tags":                        "true",
	"fill-request-fields-with-example": "true",
	"persist-auth":                     "false",
}

// RapiDocAuthDefaults returns the authentication attributes a RapiDoc page
// starts from: authentication enabled, credentials not persisted, API keys
// read from the X-API-Key header.
func RapiDocAuthDefaults() map[string]string {
	return map[string]string{
		"allow-authentication": "true",
		"persist-auth":         "false",
		"api-key-name":         "X-API-Key",
		"api-key-location":     "header",
	}
}

// WithJWTAuth returns a copy of the page configured for JWT bearer
// authentication, persisting credentials across reloads.
func (p Page) WithJWTAuth() Page {
	return p.withOptions(map[string]string{
		"allow-authentication": "true",
		"persist-auth":         "true",
	})
}

// WithAPIKeyAuth returns a copy of the page configured for API-key
// authentication using the given header name. An empty name keeps the
// X-API-Key default.
func (p Page) WithAPIKeyAuth(apiKeyName string) Page {
	if apiKeyName == "" {
		apiKeyName = "X-API-Key"
	}
	return p.withOptions(map[string]string{
		"allow-authentication": "true",
		"api-key-name":         apiKeyName,
		"api-key-location":     "header",
	})
}

func rapidocBase(p Page) (string, error) {
	attrs := p.options(p.Brand.RapiDocAttributes(), rapidocDefaults)
	var b strings.Builder
	for _, key := range sortedKeys(attrs) {
		if attrs[key] == "" {
			continue
		}
		fmt.Fprintf(&b, " %s=\"%s\"", key, html.EscapeString(attrs[key]))
	}

	var out strings.Builder
	err := rapidocTemplate.Execute(&out, struct {
		Title   string
		SpecURL string
		JSURL   string
		Attrs   template.HTMLAttr
	}{
		Title:   p.Title,
		SpecURL: p.SpecURL,
		JSURL:   RapiDocJSURL,
		Attrs:   template.HTMLAttr(b.String()),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func rapidocThemeCSS(cfg brand.Config) string {
	return fmt.Sprintf(`/* RapiDoc method and accent colors */
rapi-doc {
    --green: %[1]s;
    --blue: %[1]s;
    --orange: %[1]s;
    --red: %[2]s;
}

rapi-doc::-webkit-scrollbar {
    width: 8px;
}

rapi-doc::-webkit-scrollbar-track {
    background: %[3]s;
}

rapi-doc::-webkit-scrollbar-thumb {
    background: %[1]s;
    border-radius: 4px;
}

rapi-doc::-webkit-scrollbar-thumb:hover {
    background: %[4]s;
}

.syneto-rapidoc-container {
    position: relative;
    min-height: 100vh;
}

.syneto-rapidoc-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
    background: %[5]s;
}`, cfg.PrimaryColor, brand.AccentRed, cfg.NavBgColor, cfg.NavAccentColor, cfg.BackgroundColor)
}

func rapidocScript(cfg brand.Config) string {
	return `<script>
(function() {
    var rapidoc = document.querySelector('rapi-doc');
    var container = document.querySelector('.syneto-rapidoc-container');
    if (!rapidoc || !container) {
        return;
    }

    var loading = document.createElement('div');
    loading.className = 'syneto-rapidoc-loading syneto-loading';
    loading.textContent = 'Loading API Documentation...';
    container.appendChild(loading);

    rapidoc.addEventListener('spec-loaded', function() {
        setTimeout(function() {
            if (loading.parentNode) {
                loading.parentNode.removeChild(loading);
            }
        }, 500);
    });

    rapidoc.addEventListener('spec-load-error', function(e) {
        if (loading.parentNode) {
            loading.innerHTML = '<div class="syneto-error">' +
                '<h3>Failed to Load API Documentation</h3>' +
                '<p>Unable to load the OpenAPI specification.</p>' +
                '<p>Please check the URL and try again.</p>' +
                '<p><small>Error: ' + (e.detail || 'Unknown error') + '</small></p>' +
                '</div>';
        }
    });

    setTimeout(function() {
        if (loading.parentNode && loading.textContent.indexOf('Loading') !== -1) {
            loading.innerHTML = '<div class="syneto-error">' +
                '<h3>Loading Timeout</h3>' +
                '<p>The API documentation is taking longer than expected to load.</p>' +
                '<p>Please refresh the page or check your connection.</p>' +
                '</div>';
        }
    }, 10000);
})();
</script>`
}
