package htmlinject

import (
	"strings"
	"testing"
)

const styleFrag = "<style>.brand { color: red; }</style>"
const scriptFrag = "<script>console.log('ready');</script>"

func TestApplyWellFormedDocument(t *testing.T) {
	base := "<html><head></head><body>X</body></html>"

	out := Injection{Style: styleFrag, Script: scriptFrag}.Apply(base)

	if !strings.Contains(out, "X") {
		t.Fatal("original content lost")
	}
	styleAt := strings.Index(out, styleFrag)
	headCloseAt := strings.Index(out, "</head>")
	if styleAt == -1 || headCloseAt == -1 || styleAt > headCloseAt {
		t.Fatalf("style not positioned before </head>: %q", out)
	}
	scriptAt := strings.Index(out, scriptFrag)
	bodyCloseAt := strings.Index(out, "</body>")
	if scriptAt == -1 || bodyCloseAt == -1 || scriptAt > bodyCloseAt {
		t.Fatalf("script not positioned before </body>: %q", out)
	}
}

func TestApplyUnclosedDocument(t *testing.T) {
	base := "<html><body>Unclosed"

	out := Injection{Style: styleFrag, Script: scriptFrag}.Apply(base)

	if !strings.Contains(out, "Unclosed") {
		t.Fatal("original content lost")
	}
	if !strings.Contains(out, styleFrag) {
		t.Fatal("style fragment missing")
	}
	if !strings.Contains(out, scriptFrag) {
		t.Fatal("script fragment missing")
	}
	if !strings.HasPrefix(out, styleFrag) {
		t.Fatal("style should be prepended when </head> is absent")
	}
	if !strings.HasSuffix(out, scriptFrag) {
		t.Fatal("script should be appended when </body> is absent")
	}
}

func TestApplyEmptyDocument(t *testing.T) {
	out := Injection{Style: styleFrag, Script: scriptFrag}.Apply("")

	if out != styleFrag+scriptFrag {
		t.Fatalf("unexpected output for empty input: %q", out)
	}
}

func TestApplyWrapsMarker(t *testing.T) {
	base := `<html><head></head><body><div id="app">content</div></body></html>`

	out := Injection{
		WrapperMarker: `<div id="app">`,
		WrapperOpen:   `<div class="container">`,
	}.Apply(base)

	if !strings.Contains(out, `<div class="container"><div id="app">`) {
		t.Fatalf("marker not wrapped: %q", out)
	}
	if !strings.Contains(out, "</div></body>") {
		t.Fatalf("container not closed before </body>: %q", out)
	}
	if !strings.Contains(out, "content") {
		t.Fatal("original content lost")
	}
}

func TestApplyWrapperMarkerAbsent(t *testing.T) {
	base := "<html><head></head><body>X</body></html>"

	out := Injection{
		Style:         styleFrag,
		WrapperMarker: `<div id="missing">`,
		WrapperOpen:   `<div class="container">`,
	}.Apply(base)

	if strings.Contains(out, `class="container"`) {
		t.Fatal("container added without its marker")
	}
	if !strings.Contains(out, "X") {
		t.Fatal("original content lost")
	}
}

func TestApplyFavicon(t *testing.T) {
	base := "<html><head><title>T</title></head><body></body></html>"

	out := Injection{FaviconURL: "/favicon.ico"}.Apply(base)

	want := `<head><link rel="icon" type="image/x-icon" href="/favicon.ico">`
	if !strings.Contains(out, want) {
		t.Fatalf("favicon link not inserted after <head>: %q", out)
	}
}

func TestApplyFaviconWithoutHead(t *testing.T) {
	base := "<body>X</body>"

	out := Injection{FaviconURL: "/favicon.ico"}.Apply(base)

	if strings.Contains(out, "favicon.ico") {
		t.Fatal("favicon injected without a <head>")
	}
	if !strings.Contains(out, "X") {
		t.Fatal("original content lost")
	}
}

func TestApplyNeverDeletesInput(t *testing.T) {
	cases := []string{
		"<html><head></head><body>alpha</body></html>",
		"<html><body>beta",
		"plain text, no markup at all",
		"",
	}
	inj := Injection{Style: styleFrag, Script: scriptFrag, FaviconURL: "/f.ico"}
	faviconLink := `<link rel="icon" type="image/x-icon" href="/f.ico">`

	for _, base := range cases {
		out := inj.Apply(base)
		stripped := strings.ReplaceAll(out, styleFrag, "")
		stripped = strings.ReplaceAll(stripped, scriptFrag, "")
		stripped = strings.ReplaceAll(stripped, faviconLink, "")
		if stripped != base {
			t.Fatalf("input %q not preserved: stripped output %q", base, stripped)
		}
	}
}
