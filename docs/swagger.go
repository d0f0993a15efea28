package docs

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/syneto/openapi-themes/brand"
)

// Swagger UI CDN assets.
const (
	SwaggerJSURL  = "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"
	SwaggerCSSURL = "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css"
)

var swaggerTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="{{.CSSURL}}">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="{{.JSURL}}"></script>
    <script>
    window.ui = SwaggerUIBundle({
        url: {{.SpecJS}},
        dom_id: "#swagger-ui",
{{.Options}}    });
    </script>
</body>
</html>
`))

// swaggerDefaults hold SwaggerUIBundle options as JavaScript literals.
var swaggerDefaults = map[string]string{
	"deepLinking":              "true",
	"displayOperationId":       "false",
	"defaultModelsExpandDepth": "1",
	"defaultModelExpandDepth":  "1",
	"defaultModelRendering":    `"example"`,
	"displayRequestDuration":   "true",
	"docExpansion":             `"list"`,
	"filter":                   "true",
	"showExtensions":           "true",
	"showCommonExtensions":     "true",
	"tryItOutEnabled":          "true",
}

func swaggerBase(p Page) (string, error) {
	opts := p.options(nil, swaggerDefaults)
	var b strings.Builder
	for _, key := range sortedKeys(opts) {
		fmt.Fprintf(&b, "        %s: %s,\n", key, opts[key])
	}

	var out strings.Builder
	err := swaggerTemplate.Execute(&out, struct {
		Title   string
		SpecJS  template.JS
		JSURL   string
		CSSURL  string
		Options template.JS
	}{
		Title:   p.Title,
		SpecJS:  template.JS(fmt.Sprintf("%q", p.SpecURL)),
		JSURL:   SwaggerJSURL,
		CSSURL:  SwaggerCSSURL,
		Options: template.JS(b.String()),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func swaggerThemeCSS(cfg brand.Config) string {
	return fmt.Sprintf(`/* Swagger UI theme overrides */
.swagger-ui .topbar {
    background-color: %[1]s;
    border-bottom: 2px solid %[2]s;
}

.swagger-ui .topbar .download-url-wrapper .select-label {
    color: %[3]s;
}

.swagger-ui .info .title {
    color: %[2]s;
    font-family: %[4]s;
}

.swagger-ui .scheme-container {
    background: %[5]s;
    border: 1px solid %[1]s;
}

.swagger-ui .opblock.opblock-get,
.swagger-ui .opblock.opblock-post,
.swagger-ui .opblock.opblock-put {
    border-color: %[2]s;
}

.swagger-ui .opblock.opblock-get .opblock-summary-method,
.swagger-ui .opblock.opblock-post .opblock-summary-method,
.swagger-ui .opblock.opblock-put .opblock-summary-method {
    background: %[2]s;
}

.swagger-ui .opblock.opblock-delete {
    border-color: %[6]s;
}

.swagger-ui .opblock.opblock-delete .opblock-summary-method {
    background: %[6]s;
}

.swagger-ui .btn.authorize,
.swagger-ui .btn.execute {
    background-color: %[2]s;
    border-color: %[2]s;
}

.swagger-ui .btn.authorize:hover,
.swagger-ui .btn.execute:hover {
    background-color: %[7]s;
    border-color: %[7]s;
}

.swagger-ui ::-webkit-scrollbar {
    width: 8px;
}

.swagger-ui ::-webkit-scrollbar-track {
    background: %[1]s;
}

.swagger-ui ::-webkit-scrollbar-thumb {
    background: %[2]s;
    border-radius: 4px;
}

.swagger-ui ::-webkit-scrollbar-thumb:hover {
    background: %[7]s;
}

.syneto-swagger-container {
    position: relative;
    min-height: 100vh;
}

.syneto-swagger-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
    background: %[8]s;
}`, cfg.NavBgColor, cfg.PrimaryColor, cfg.NavTextColor, cfg.RegularFont,
		cfg.HeaderColor, brand.AccentRed, cfg.NavAccentColor, cfg.BackgroundColor)
}

func swaggerScript(cfg brand.Config) string {
	return `<script>
(function() {
    var container = document.querySelector('.syneto-swagger-container');
    if (!container) {
        return;
    }

    var loading = document.createElement('div');
    loading.className = 'syneto-swagger-loading syneto-loading';
    loading.textContent = 'Loading API Documentation...';
    container.appendChild(loading);

    var poll = setInterval(function() {
        var rendered = container.querySelector('.swagger-ui .information-container');
        if (rendered) {
            clearInterval(poll);
            if (loading.parentNode) {
                loading.parentNode.removeChild(loading);
            }
        }
    }, 100);

    setTimeout(function() {
        if (loading.parentNode) {
            clearInterval(poll);
            loading.innerHTML = '<div class="syneto-error">' +
                '<h3>Loading Timeout</h3>' +
                '<p>The API documentation is taking longer than expected to load.</p>' +
                '<p>Please refresh the page or check your connection.</p>' +
                '</div>';
        }
    }, 30000);
})();
</script>`
}
