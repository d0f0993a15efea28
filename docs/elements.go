package docs

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/syneto/openapi-themes/brand"
)

// Stoplight Elements CDN assets.
const (
	ElementsJSURL  = "https://unpkg.com/@stoplight/elements/web-components.min.js"
	ElementsCSSURL = "https://unpkg.com/@stoplight/elements/styles.min.css"
)

var elementsTemplate = template.Must(template.New("elements").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="{{.CSSURL}}">
    <script src="{{.JSURL}}"></script>
</head>
<body>
    <elements-api apiDescriptionUrl="{{.SpecURL}}"{{.Attrs}}></elements-api>
</body>
</html>
`))

// elementsDefaults are the <elements-api> attributes applied by default.
var elementsDefaults = map[string]string{
	"layout":       "sidebar",
	"router":       "hash",
	"hideInternal": "false",
	"hideTryIt":    "false",
	"hideSchemas":  "false",
	"hideExport":   "false",
}

func elementsBase(p Page) (string, error) {
	attrs := p.options(nil, elementsDefaults)
	var b strings.Builder
	for _, key := range sortedKeys(attrs) {
		if attrs[key] == "" {
			continue
		}
		fmt.Fprintf(&b, " %s=\"%s\"", key, html.EscapeString(attrs[key]))
	}

	var out strings.Builder
	err := elementsTemplate.Execute(&out, struct {
		Title   string
		SpecURL string
		JSURL   string
		CSSURL  string
		Attrs   template.HTMLAttr
	}{
		Title:   p.Title,
		SpecURL: p.SpecURL,
		JSURL:   ElementsJSURL,
		CSSURL:  ElementsCSSURL,
		Attrs:   template.HTMLAttr(b.String()),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func elementsThemeCSS(cfg brand.Config) string {
	return fmt.Sprintf(`/* Stoplight Elements theme overrides */
body {
    font-family: %[1]s;
    background-color: %[2]s;
    color: %[3]s;
    margin: 0;
}

.sl-elements {
    --color-primary: %[4]s;
    --color-success: %[5]s;
    --color-warning: %[6]s;
    --color-danger: %[7]s;
    --color-canvas: %[2]s;
    --color-canvas-100: %[8]s;
    --color-canvas-200: %[9]s;
    --font-family: %[1]s;
    --font-family-mono: %[10]s;
}

.sl-elements .sl-panel .sl-panel-header {
    background-color: %[9]s;
    border-bottom: 2px solid %[4]s;
}

.sl-elements .sl-sidebar {
    background-color: %[9]s;
    border-right: 1px solid %[8]s;
}

.sl-elements .sl-button--primary {
    background-color: %[4]s;
    border-color: %[4]s;
}

.sl-elements .sl-button--primary:hover {
    background-color: %[11]s;
    border-color: %[11]s;
}

.sl-elements ::-webkit-scrollbar {
    width: 8px;
}

.sl-elements ::-webkit-scrollbar-track {
    background: %[9]s;
}

.sl-elements ::-webkit-scrollbar-thumb {
    background: %[4]s;
    border-radius: 4px;
}

.sl-elements ::-webkit-scrollbar-thumb:hover {
    background: %[11]s;
}

.syneto-elements-container {
    position: relative;
    min-height: 100vh;
}

.syneto-elements-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
    background: %[2]s;
}`, cfg.RegularFont, cfg.BackgroundColor, cfg.TextColor, cfg.PrimaryColor,
		brand.AccentGreen, brand.AccentYellow, brand.AccentRed,
		cfg.HeaderColor, cfg.NavBgColor, cfg.MonoFont, cfg.NavAccentColor)
}

func elementsScript(cfg brand.Config) string {
	return `<script>
(function() {
    var container = document.querySelector('.syneto-elements-container');
    if (!container) {
        return;
    }

    var loading = document.createElement('div');
    loading.className = 'syneto-elements-loading syneto-loading';
    loading.textContent = 'Loading API Documentation...';
    container.appendChild(loading);

    var poll = setInterval(function() {
        if (document.querySelector('.sl-elements')) {
            clearInterval(poll);
            setTimeout(function() {
                if (loading.parentNode) {
                    loading.parentNode.removeChild(loading);
                }
            }, 500);
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
