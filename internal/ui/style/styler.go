package style

import "github.com/footprint-tools/roped/internal/domain"

// Styler hands the package styles to code that takes a domain.Styler.
// It follows the state set by Init.
type Styler struct{}

func NewStyler() *Styler {
	return &Styler{}
}

func (*Styler) Enabled() bool              { return Enabled() }
func (*Styler) Success(text string) string { return Apply(RoleSuccess, text) }
func (*Styler) Warning(text string) string { return Apply(RoleWarning, text) }
func (*Styler) Error(text string) string   { return Apply(RoleError, text) }
func (*Styler) Info(text string) string    { return Apply(RoleInfo, text) }
func (*Styler) Muted(text string) string   { return Apply(RoleMuted, text) }
func (*Styler) Header(text string) string  { return Apply(RoleHeader, text) }

// NopStyler returns text unchanged, for tests and plain output.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var (
	_ domain.Styler = (*Styler)(nil)
	_ domain.Styler = NopStyler{}
)
