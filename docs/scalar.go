package docs

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/syneto/openapi-themes/brand"
)

// ScalarJSURL is the CDN location of the Scalar API reference bundle.
const ScalarJSURL = "https://cdn.jsdelivr.net/npm/@scalar/api-reference"

var scalarTemplate = template.Must(template.New("scalar").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
</head>
<body>
    <div id="scalar-app">
        <script id="api-reference" data-url="{{.SpecURL}}" data-configuration="{{.Configuration}}"></script>
    </div>
    <script src="{{.JSURL}}"></script>
</body>
</html>
`))

// scalarDefaults hold Scalar configuration values as JSON literals.
var scalarDefaults = map[string]string{
	"layout":             `"modern"`,
	"showSidebar":        "true",
	"hideModels":         "false",
	"hideDownloadButton": "false",
}

func scalarBase(p Page) (string, error) {
	derived := map[string]string{
		"theme":    fmt.Sprintf("%q", string(p.Brand.Theme)),
		"darkMode": fmt.Sprintf("%t", p.Brand.Theme == brand.ThemeDark),
	}
	opts := p.options(derived, scalarDefaults)

	customCSS, err := json.Marshal(scalarCustomCSS(p.Brand))
	if err != nil {
		return "", err
	}

	var cfg strings.Builder
	cfg.WriteString("{")
	for _, key := range sortedKeys(opts) {
		fmt.Fprintf(&cfg, "%q:%s,", key, opts[key])
	}
	fmt.Fprintf(&cfg, `"customCss":%s}`, customCSS)

	var out strings.Builder
	err = scalarTemplate.Execute(&out, struct {
		Title         string
		SpecURL       string
		JSURL         string
		Configuration string
	}{
		Title:         p.Title,
		SpecURL:       p.SpecURL,
		JSURL:         ScalarJSURL,
		Configuration: cfg.String(),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// scalarCustomCSS feeds Scalar's own theming hook with the brand palette.
func scalarCustomCSS(cfg brand.Config) string {
	return fmt.Sprintf(`:root {
    --scalar-color-1: %[1]s;
    --scalar-color-2: %[2]s;
    --scalar-color-3: %[3]s;
    --scalar-color-accent: %[1]s;
    --scalar-background-1: %[3]s;
    --scalar-background-2: %[4]s;
    --scalar-background-3: %[5]s;
    --scalar-background-accent: %[1]s;
    --scalar-border-color: %[5]s;
    --scalar-font: %[6]s;
    --scalar-font-code: %[7]s;
}

.scalar-app {
    --scalar-sidebar-background-1: %[5]s;
    --scalar-sidebar-item-hover-color: %[8]s;
    --scalar-sidebar-item-active-background: %[1]s;
}`, cfg.PrimaryColor, cfg.NavAccentColor, cfg.BackgroundColor, cfg.HeaderColor,
		cfg.NavBgColor, cfg.RegularFont, cfg.MonoFont, cfg.NavHoverBgColor)
}

func scalarThemeCSS(cfg brand.Config) string {
	return fmt.Sprintf(`/* Scalar theme overrides */
body {
    font-family: %[1]s;
    background-color: %[2]s;
    color: %[3]s;
    margin: 0;
}

%[4]s

::-webkit-scrollbar {
    width: 8px;
}

::-webkit-scrollbar-track {
    background: %[5]s;
}

::-webkit-scrollbar-thumb {
    background: %[6]s;
    border-radius: 4px;
}

::-webkit-scrollbar-thumb:hover {
    background: %[7]s;
}

.syneto-scalar-container {
    position: relative;
    min-height: 100vh;
}

.syneto-scalar-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
    background: %[2]s;
}`, cfg.RegularFont, cfg.BackgroundColor, cfg.TextColor, scalarCustomCSS(cfg),
		cfg.NavBgColor, cfg.PrimaryColor, cfg.NavAccentColor)
}

func scalarScript(cfg brand.Config) string {
	return `<script>
(function() {
    var container = document.querySelector('.syneto-scalar-container');
    if (!container) {
        return;
    }

    var loading = document.createElement('div');
    loading.className = 'syneto-scalar-loading syneto-loading';
    loading.textContent = 'Loading API Documentation...';
    container.appendChild(loading);

    var poll = setInterval(function() {
        if (document.querySelector('.scalar-app')) {
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
