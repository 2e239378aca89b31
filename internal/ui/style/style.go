// Package style renders text by meaning (success, error, muted...) rather
// than by color. It is the only package importing lipgloss. When styling
// is off every helper returns its input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role is what a piece of text means to the reader.
type Role int

const (
	RoleSuccess Role = iota
	RoleWarning
	RoleError
	RoleInfo
	RoleMuted
	RoleHeader
	roleCount
)

var (
	enabled bool
	colors  ColorConfig
	styles  [roleCount]lipgloss.Style
)

// Init turns styling on or off and loads the theme and color overrides
// from cfg (nil means defaults). A non-empty NO_COLOR or ROPED_NO_COLOR
// keeps styling off whatever enable says.
func Init(enable bool, cfg map[string]string) {
	enabled = enable && os.Getenv("NO_COLOR") == "" && os.Getenv("ROPED_NO_COLOR") == ""
	if !enabled {
		return
	}

	colors = LoadColorConfig(cfg)

	// Fixed profile: themes use both the 16 basic and the 256 extended colors.
	lipgloss.SetColorProfile(termenv.ANSI256)
	for role := range roleCount {
		styles[role] = styleFor(colors.forRole(role))
	}
}

// GetColors returns the colors loaded by the last enabling Init.
func GetColors() ColorConfig {
	return colors
}

// styleFor turns a color value into a style: "bold", or an ANSI color 0-255.
func styleFor(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled reports whether styling is on.
func Enabled() bool {
	return enabled
}

// Apply renders text with the style of role.
func Apply(role Role, text string) string {
	if !enabled || text == "" || role < 0 || role >= roleCount {
		return text
	}
	return styles[role].Render(text)
}

func Success(text string) string { return Apply(RoleSuccess, text) }
func Warning(text string) string { return Apply(RoleWarning, text) }

// Error styles reported errors.
func Error(text string) string { return Apply(RoleError, text) }

// Info styles command names.
func Info(text string) string { return Apply(RoleInfo, text) }

// Header styles titles.
func Header(text string) string { return Apply(RoleHeader, text) }

// Muted styles command numbers, usage hints and timestamps.
func Muted(text string) string { return Apply(RoleMuted, text) }
