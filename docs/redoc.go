package docs

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/syneto/openapi-themes/brand"
)

// ReDocJSURL is the CDN location of the standalone ReDoc bundle.
const ReDocJSURL = "https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"

var redocTemplate = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{.Title}}</title>
    <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
    <div id="redoc-container"></div>
    <script src="{{.JSURL}}"></script>
    <script>
    Redoc.init({{.SpecJS}}, {{.Options}}, document.getElementById("redoc-container"));
    </script>
</body>
</html>
`))

// redocDefaults hold Redoc.init options as JavaScript literals. The theme
// object is appended separately because it derives from the brand config.
var redocDefaults = map[string]string{
	"scrollYOffset":      "60",
	"hideDownloadButton": "false",
	"disableSearch":      "false",
	"hideLoading":        "false",
	"nativeScrollbars":   "false",
}

func redocBase(p Page) (string, error) {
	opts := p.options(nil, redocDefaults)
	var b strings.Builder
	b.WriteString("{\n")
	for _, key := range sortedKeys(opts) {
		fmt.Fprintf(&b, "        %s: %s,\n", key, opts[key])
	}
	b.WriteString("        theme: ")
	b.WriteString(redocThemeJSON(p.Brand))
	b.WriteString("\n    }")

	var out strings.Builder
	err := redocTemplate.Execute(&out, struct {
		Title   string
		SpecJS  template.JS
		JSURL   string
		Options template.JS
	}{
		Title:   p.Title,
		SpecJS:  template.JS(fmt.Sprintf("%q", p.SpecURL)),
		JSURL:   ReDocJSURL,
		Options: template.JS(b.String()),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// redocThemeJSON maps the brand palette onto ReDoc's theme object. Written
// out literally to keep key order stable.
func redocThemeJSON(cfg brand.Config) string {
	return fmt.Sprintf(`{
            "colors": {
                "primary": { "main": %q },
                "success": { "main": %q },
                "warning": { "main": %q },
                "error": { "main": %q },
                "gray": {
                    "50": %q, "100": %q, "200": %q, "300": %q, "400": %q,
                    "500": %q, "600": %q, "700": %q, "800": %q, "900": %q
                }
            },
            "typography": {
                "fontSize": "14px",
                "lineHeight": "1.5em",
                "fontFamily": %q,
                "code": { "fontSize": "13px", "fontFamily": %q },
                "headings": { "fontFamily": %q, "fontWeight": "600" }
            },
            "sidebar": {
                "backgroundColor": %q,
                "textColor": %q,
                "activeTextColor": %q,
                "groupItems": { "textTransform": "uppercase" },
                "level1Items": { "textTransform": "none" }
            },
            "rightPanel": {
                "backgroundColor": %q,
                "textColor": %q
            }
        }`,
		cfg.PrimaryColor, brand.AccentGreen, brand.AccentYellow, brand.AccentRed,
		brand.Neutral100, brand.Neutral200, brand.Neutral300, brand.Neutral400, brand.Neutral500,
		brand.Neutral600, brand.Neutral700, brand.Neutral800, brand.Neutral900, brand.PrimaryDark,
		cfg.RegularFont, cfg.MonoFont, cfg.RegularFont,
		cfg.NavBgColor, cfg.NavTextColor, cfg.PrimaryColor,
		cfg.HeaderColor, cfg.TextColor)
}

func redocThemeCSS(cfg brand.Config) string {
	return fmt.Sprintf(`/* ReDoc theme overrides */
body {
    font-family: %[1]s;
    background-color: %[2]s;
    color: %[3]s;
}

.redoc-wrap {
    background-color: %[2]s;
}

.api-info h1 {
    color: %[4]s !important;
}

.http-verb.get,
.http-verb.post {
    background-color: %[4]s !important;
}

.http-verb.put {
    background-color: %[5]s !important;
}

.http-verb.delete {
    background-color: %[6]s !important;
}

.http-verb.patch {
    background-color: %[7]s !important;
}

.search-box input {
    background-color: %[8]s !important;
    border-color: %[4]s !important;
    color: %[3]s !important;
}

.search-box input:focus {
    border-color: %[9]s !important;
}

::-webkit-scrollbar {
    width: 8px;
}

::-webkit-scrollbar-track {
    background: %[10]s;
}

::-webkit-scrollbar-thumb {
    background: %[4]s;
    border-radius: 4px;
}

::-webkit-scrollbar-thumb:hover {
    background: %[9]s;
}

.syneto-redoc-container {
    position: relative;
    min-height: 100vh;
}

.syneto-redoc-loading {
    position: absolute;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    z-index: 9999;
    background: %[2]s;
}`, cfg.RegularFont, cfg.BackgroundColor, cfg.TextColor, cfg.PrimaryColor,
		brand.AccentBlue, brand.AccentRed, brand.AccentYellow, cfg.HeaderColor,
		cfg.NavAccentColor, cfg.NavBgColor)
}

func redocScript(cfg brand.Config) string {
	return `<script>
(function() {
    var container = document.querySelector('.syneto-redoc-container');
    if (!container) {
        return;
    }

    var loading = document.createElement('div');
    loading.className = 'syneto-redoc-loading syneto-loading';
    loading.textContent = 'Loading API Documentation...';
    container.appendChild(loading);

    var poll = setInterval(function() {
        if (container.querySelector('.redoc-wrap')) {
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
