package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

func (c ColorConfig) forRole(role Role) string {
	switch role {
	case RoleSuccess:
		return c.Success
	case RoleWarning:
		return c.Warning
	case RoleError:
		return c.Error
	case RoleInfo:
		return c.Info
	case RoleMuted:
		return c.Muted
	default:
		return c.Header
	}
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "mono", "ocean"}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
	},
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		Header:  "bold",
	},
	"mono-dark": {
		Success: "255",
		Warning: "250",
		Error:   "bold",
		Info:    "255",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "bold",
		Info:    "232",
		Muted:   "246",
		Header:  "bold",
	},
	"ocean-dark": {
		Success: "43",  // sea green
		Warning: "222", // sand
		Error:   "203", // coral
		Info:    "75",  // sky blue
		Muted:   "66",  // slate
		Header:  "bold",
	},
	"ocean-light": {
		Success: "29",  // deep teal
		Warning: "136", // dark sand
		Error:   "160", // deep coral
		Info:    "25",  // navy
		Muted:   "244", // gray
		Header:  "bold",
	},
}

// colorConfigKeys maps config keys to the ColorConfig fields they override.
var colorConfigKeys = map[string]func(*ColorConfig) *string{
	"color_success": func(c *ColorConfig) *string { return &c.Success },
	"color_warning": func(c *ColorConfig) *string { return &c.Warning },
	"color_error":   func(c *ColorConfig) *string { return &c.Error },
	"color_info":    func(c *ColorConfig) *string { return &c.Info },
	"color_muted":   func(c *ColorConfig) *string { return &c.Muted },
	"color_header":  func(c *ColorConfig) *string { return &c.Header },
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name, detected
// from the terminal background. Names with a suffix are returned as is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (ROPED_COLOR_*)
// 2. Config file value
// 3. Theme value (ROPED_THEME, then the theme key)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if envTheme := os.Getenv("ROPED_THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = cfgTheme
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for configKey, field := range colorConfigKeys {
		if envVal := os.Getenv("ROPED_" + strings.ToUpper(configKey)); envVal != "" {
			*field(&result) = envVal
			continue
		}

		if cfgVal := cfg[configKey]; cfgVal != "" {
			*field(&result) = cfgVal
		}
	}

	return result
}
