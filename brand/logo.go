package brand

import (
	"fmt"
	"net/url"
	"strings"
)

// SynetoLogoSVG is the inline Syneto wordmark shipped with the default
// configuration, embedded so documentation pages need no extra asset request.
const SynetoLogoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 220 48">
    <circle cx="24" cy="24" r="18" fill="#ad0f6c"/>
    <path d="M16 24a8 8 0 0 1 16 0 8 8 0 0 1-16 0z" fill="#fcfdfe"/>
    <text x="52" y="32" fill="#fcfdfe" font-family="Inter, sans-serif" font-size="22" font-weight="600">SYNETO</text>
</svg>`

// SVGDataURI converts an inline SVG document into a data URI suitable for an
// img src or a logo attribute. The payload must start with an XML or SVG
// prologue; anything else is rejected rather than silently embedded.
func SVGDataURI(svg string) (string, error) {
	trimmed := strings.TrimSpace(svg)
	if trimmed == "" {
		return "", fmt.Errorf("brand: svg logo is empty")
	}
	if !strings.HasPrefix(trimmed, "<?xml") && !strings.HasPrefix(trimmed, "<svg") {
		return "", fmt.Errorf("brand: svg logo must start with <?xml or <svg, got %q", prefixOf(trimmed, 20))
	}
	return "data:image/svg+xml;charset=utf-8," + url.PathEscape(trimmed), nil
}

func prefixOf(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
