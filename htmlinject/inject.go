// Package htmlinject splices CSS and JavaScript fragments into an existing
// HTML document by plain string surgery. It deliberately avoids a real HTML
// parser: documents produced by the documentation tools are simple enough
// that marker substrings are reliable, and the worst case for a document
// missing its markers is appended rather than nested fragments. Repeating an
// injection is not byte-for-byte idempotent; callers inject exactly once per
// render.
package htmlinject

import "strings"

const (
	headOpen  = "<head>"
	headClose = "</head>"
	bodyClose = "</body>"
)

// Injection describes the fragments to splice into a base document.
type Injection struct {
	// Style is inserted before </head>, or prepended when the tag is absent.
	Style string
	// Script is inserted before </body>, or appended when the tag is absent.
	Script string
	// FaviconURL, when set, adds a <link rel="icon"> right after <head>.
	FaviconURL string
	// WrapperMarker is a literal substring (typically the tool's mount
	// <div>) that gets enclosed in WrapperOpen...</div> for positioning.
	WrapperMarker string
	// WrapperOpen is the opening tag of the positioning container.
	WrapperOpen string
}

// Apply returns the document with every configured fragment spliced in. The
// input text is only ever augmented, never removed, and no error conditions
// exist: a document without structural markers degrades to fragments placed
// at the edges.
func (in Injection) Apply(html string) string {
	if in.Style != "" {
		if strings.Contains(html, headClose) {
			html = strings.Replace(html, headClose, in.Style+headClose, 1)
		} else {
			html = in.Style + html
		}
	}

	if in.WrapperMarker != "" && in.WrapperOpen != "" && strings.Contains(html, in.WrapperMarker) {
		html = strings.Replace(html, in.WrapperMarker, in.WrapperOpen+in.WrapperMarker, 1)
		if strings.Contains(html, bodyClose) {
			html = strings.Replace(html, bodyClose, "</div>"+bodyClose, 1)
		} else {
			html += "</div>"
		}
	}

	if in.Script != "" {
		if strings.Contains(html, bodyClose) {
			html = strings.Replace(html, bodyClose, in.Script+bodyClose, 1)
		} else {
			html += in.Script
		}
	}

	if in.FaviconURL != "" && strings.Contains(html, headOpen) {
		link := `<link rel="icon" type="image/x-icon" href="` + in.FaviconURL + `">`
		html = strings.Replace(html, headOpen, headOpen+link, 1)
	}

	return html
}
