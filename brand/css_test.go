package brand

import (
	"strings"
	"testing"
)

func TestCSSVariablesCoversEveryField(t *testing.T) {
	cfg := DefaultConfig()
	css := cfg.CSSVariables()

	if !strings.HasPrefix(css, ":root {") {
		t.Fatalf("expected :root block, got %q", css[:20])
	}

	wanted := []string{
		"--syneto-primary-color",
		"--syneto-bg-color",
		"--syneto-text-color",
		"--syneto-header-color",
		"--syneto-nav-bg-color",
		"--syneto-nav-text-color",
		"--syneto-nav-hover-bg-color",
		"--syneto-nav-hover-text-color",
		"--syneto-nav-accent-color",
		"--syneto-nav-accent-text-color",
		"--syneto-regular-font",
		"--syneto-mono-font",
	}
	for _, name := range wanted {
		if got := strings.Count(css, name+":"); got != 1 {
			t.Fatalf("expected exactly one %s entry, got %d", name, got)
		}
	}
	if got := strings.Count(css, "--syneto-"); got < len(wanted) {
		t.Fatalf("expected at least %d variables, got %d", len(wanted), got)
	}
	if !strings.Contains(css, PrimaryMagenta) {
		t.Fatal("primary color missing from variables block")
	}
}

func TestCSSVariablesStableOrdering(t *testing.T) {
	cfg := DefaultConfig()
	first := cfg.CSSVariables()
	for i := 0; i < 10; i++ {
		if got := cfg.CSSVariables(); got != first {
			t.Fatal("CSSVariables output changed between calls")
		}
	}
}

func TestLoadingCSS(t *testing.T) {
	cfg := DefaultConfig()
	css := cfg.LoadingCSS()

	for _, want := range []string{".syneto-loading", ".syneto-error", "@keyframes syneto-spin"} {
		if !strings.Contains(css, want) {
			t.Fatalf("loading CSS missing %q", want)
		}
	}
	if !strings.Contains(css, cfg.BackgroundColor) {
		t.Fatal("loading CSS missing background color")
	}
	if !strings.Contains(css, cfg.TextColor) {
		t.Fatal("loading CSS missing text color")
	}
}
