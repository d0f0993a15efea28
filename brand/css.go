package brand

import (
	"fmt"
	"strings"
)

// cssVariableOrder fixes the emission order of CSSVariables so repeated calls
// produce byte-identical output.
var cssVariableOrder = []string{
	"primary-color",
	"bg-color",
	"text-color",
	"header-color",
	"nav-bg-color",
	"nav-text-color",
	"nav-hover-bg-color",
	"nav-hover-text-color",
	"nav-accent-color",
	"nav-accent-text-color",
	"regular-font",
	"mono-font",
}

func (c Config) cssVariableValues() map[string]string {
	return map[string]string{
		"primary-color":         c.PrimaryColor,
		"bg-color":              c.BackgroundColor,
		"text-color":            c.TextColor,
		"header-color":          c.HeaderColor,
		"nav-bg-color":          c.NavBgColor,
		"nav-text-color":        c.NavTextColor,
		"nav-hover-bg-color":    c.NavHoverBgColor,
		"nav-hover-text-color":  c.NavHoverTextColor,
		"nav-accent-color":      c.NavAccentColor,
		"nav-accent-text-color": c.NavAccentTextColor,
		"regular-font":          c.RegularFont,
		"mono-font":             c.MonoFont,
	}
}

// CSSVariables emits the :root block exposing every color and font value as a
// --syneto-* custom property. Output ordering is stable across calls.
func (c Config) CSSVariables() string {
	values := c.cssVariableValues()
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range cssVariableOrder {
		fmt.Fprintf(&b, "    --syneto-%s: %s;\n", name, values[name])
	}
	b.WriteString("}")
	return b.String()
}

// LoadingCSS returns the shared loading-spinner and error-box styles. Only
// the background and text colors are substituted; everything else reads the
// --syneto-* variables emitted by CSSVariables.
func (c Config) LoadingCSS() string {
	return fmt.Sprintf(`.syneto-loading {
    display: flex;
    align-items: center;
    justify-content: center;
    flex-direction: column;
    gap: 1rem;
    font-family: var(--syneto-regular-font);
    color: %[1]s;
    background: %[2]s;
}

.syneto-loading::before {
    content: '';
    width: 40px;
    height: 40px;
    border: 3px solid %[2]s;
    border-top-color: var(--syneto-primary-color);
    border-radius: 50%%;
    animation: syneto-spin 0.8s linear infinite;
}

@keyframes syneto-spin {
    to { transform: rotate(360deg); }
}

.syneto-error {
    padding: 2rem;
    text-align: center;
    font-family: var(--syneto-regular-font);
    color: %[1]s;
    background: %[2]s;
}

.syneto-error h3 {
    color: var(--syneto-primary-color);
    margin-bottom: 0.5rem;
}`, c.TextColor, c.BackgroundColor)
}
