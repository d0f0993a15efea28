package brand

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Theme selects the base color scheme for a documentation page.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeAuto  Theme = "auto"
)

// Syneto color palette. The neutral scale runs light to dark.
const (
	PrimaryMagenta = "#ad0f6c"
	PrimaryDark    = "#07080d"
	PrimaryLight   = "#fcfdfe"

	AccentRed    = "#f01932"
	AccentBlue   = "#1e3a8a"
	AccentGreen  = "#059669"
	AccentYellow = "#d97706"
	AccentPink   = "#ff53a8"

	Neutral100 = "#f7f8fa"
	Neutral200 = "#e9ebf0"
	Neutral300 = "#d3d6de"
	Neutral400 = "#aab0bc"
	Neutral500 = "#7c8494"
	Neutral600 = "#5b6271"
	Neutral700 = "#3f4452"
	Neutral800 = "#262a35"
	Neutral900 = "#14161d"
)

// Default font stacks.
const (
	DefaultRegularFont = "'Inter', 'Segoe UI', sans-serif"
	DefaultMonoFont    = "'JetBrains Mono', 'Fira Code', monospace"
)

// Config carries the presentation preferences for a documentation page.
// Instances are treated as immutable once constructed; renderers only read
// from them, so a single Config may back any number of concurrent requests.
type Config struct {
	Theme       Theme  `validate:"required,oneof=dark light auto"`
	CompanyName string `validate:"required"`
	AppTitle    string

	PrimaryColor       string `validate:"required,hexcolor"`
	BackgroundColor    string `validate:"required,hexcolor"`
	TextColor          string `validate:"required,hexcolor"`
	HeaderColor        string `validate:"required,hexcolor"`
	NavBgColor         string `validate:"required,hexcolor"`
	NavTextColor       string `validate:"required,hexcolor"`
	NavHoverBgColor    string `validate:"required,hexcolor"`
	NavHoverTextColor  string `validate:"required,hexcolor"`
	NavAccentColor     string `validate:"required,hexcolor"`
	NavAccentTextColor string `validate:"required,hexcolor"`

	RegularFont string `validate:"required"`
	MonoFont    string `validate:"required"`

	// At most one of LogoURL / LogoSVG may be set; when LogoSVG is used the
	// renderers receive it converted to a data URI.
	LogoURL string `validate:"excluded_with=LogoSVG"`
	LogoSVG string

	FaviconURL string

	CustomCSSURLs []string
	CustomJSURLs  []string
}

var validate = validator.New()

// DefaultConfig returns the standard Syneto dark configuration with the
// inline Syneto logo.
func DefaultConfig() Config {
	return Config{
		Theme:              ThemeDark,
		CompanyName:        "Syneto",
		PrimaryColor:       PrimaryMagenta,
		BackgroundColor:    PrimaryDark,
		TextColor:          PrimaryLight,
		HeaderColor:        Neutral900,
		NavBgColor:         Neutral800,
		NavTextColor:       Neutral300,
		NavHoverBgColor:    Neutral700,
		NavHoverTextColor:  PrimaryLight,
		NavAccentColor:     AccentPink,
		NavAccentTextColor: PrimaryDark,
		RegularFont:        DefaultRegularFont,
		MonoFont:           DefaultMonoFont,
		LogoSVG:            SynetoLogoSVG,
	}
}

// LightConfig returns the light-theme variant of the default configuration.
func LightConfig() Config {
	cfg := DefaultConfig()
	cfg.Theme = ThemeLight
	cfg.BackgroundColor = Neutral100
	cfg.TextColor = Neutral900
	cfg.HeaderColor = Neutral200
	cfg.NavBgColor = Neutral200
	cfg.NavTextColor = Neutral700
	cfg.NavHoverBgColor = Neutral300
	cfg.NavHoverTextColor = Neutral900
	return cfg
}

// ConfigWithSVGLogo returns the default configuration carrying the given
// inline SVG as logo. The SVG is validated when the logo is resolved.
func ConfigWithSVGLogo(svg, companyName string) Config {
	cfg := DefaultConfig()
	cfg.LogoSVG = svg
	if companyName != "" {
		cfg.CompanyName = companyName
	}
	return cfg
}

// Validate reports whether the configuration is usable by a renderer.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("brand: invalid config: %w", err)
	}
	if c.LogoSVG != "" {
		if _, err := SVGDataURI(c.LogoSVG); err != nil {
			return err
		}
	}
	return nil
}

// Logo resolves the authoritative logo reference for rendering: the explicit
// URL when set, otherwise the inline SVG as a data URI, otherwise empty.
func (c Config) Logo() (string, error) {
	if c.LogoURL != "" {
		return c.LogoURL, nil
	}
	if c.LogoSVG != "" {
		return SVGDataURI(c.LogoSVG)
	}
	return "", nil
}

// RapiDocAttributes returns the kebab-case attribute map used to parameterize
// the <rapi-doc> element.
func (c Config) RapiDocAttributes() map[string]string {
	logo, err := c.Logo()
	if err != nil {
		logo = ""
	}
	return map[string]string{
		"theme":                 string(c.Theme),
		"bg-color":              c.BackgroundColor,
		"text-color":            c.TextColor,
		"header-color":          c.HeaderColor,
		"primary-color":         c.PrimaryColor,
		"nav-bg-color":          c.NavBgColor,
		"nav-text-color":        c.NavTextColor,
		"nav-hover-bg-color":    c.NavHoverBgColor,
		"nav-hover-text-color":  c.NavHoverTextColor,
		"nav-accent-color":      c.NavAccentColor,
		"nav-accent-text-color": c.NavAccentTextColor,
		"regular-font":          c.RegularFont,
		"mono-font":             c.MonoFont,
		"logo":                  logo,
	}
}

// PageTitle returns the HTML title for a documentation page, preferring the
// explicit application title.
func (c Config) PageTitle() string {
	if c.AppTitle != "" {
		return c.AppTitle
	}
	return c.CompanyName + " API Documentation"
}
