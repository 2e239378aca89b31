package style

import (
	"strings"
	"testing"
)

// clearEnv isolates a test from color settings in the environment.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("ROPED_NO_COLOR", "")
	t.Setenv("ROPED_THEME", "default-dark")
	for key := range colorConfigKeys {
		t.Setenv("ROPED_"+strings.ToUpper(key), "")
	}
}

var helpers = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearEnv(t)
	Init(false, nil)

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if output != input {
				t.Errorf("%s() with disabled styling: got %q, want %q", tt.name, output, input)
			}
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearEnv(t)
	Init(true, nil)

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if !strings.Contains(output, input) {
				t.Errorf("%s() output %q does not contain input %q", tt.name, output, input)
			}

			if !strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with enabled styling should contain ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "ROPED_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(env, "1")

			Init(true, nil)

			if Enabled() {
				t.Errorf("Enabled() should return false when %s is set", env)
			}
			if got := Error("boom"); got != "boom" {
				t.Errorf("Error() should return plain text when %s is set: got %q", env, got)
			}
		})
	}
}

func TestEnabledReturnsCorrectState(t *testing.T) {
	clearEnv(t)

	Init(false, nil)
	if Enabled() {
		t.Error("Enabled() should return false after Init(false)")
	}

	Init(true, nil)
	if !Enabled() {
		t.Error("Enabled() should return true after Init(true)")
	}
}

func TestEmptyStringHandling(t *testing.T) {
	clearEnv(t)

	Init(true, nil)
	if got := Success(""); got != "" {
		t.Errorf("Success(\"\") with enabled styling: got %q, want \"\"", got)
	}
}

func TestLoadColorConfig(t *testing.T) {
	t.Run("theme from config", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROPED_THEME", "")

		got := LoadColorConfig(map[string]string{"theme": "ocean-light"})
		if got != Themes["ocean-light"] {
			t.Errorf("got %+v, want ocean-light", got)
		}
	})

	t.Run("unknown theme falls back", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROPED_THEME", "nope-dark")

		got := LoadColorConfig(nil)
		if got != Themes["default-dark"] {
			t.Errorf("got %+v, want default-dark", got)
		}
	})

	t.Run("config overrides theme", func(t *testing.T) {
		clearEnv(t)

		got := LoadColorConfig(map[string]string{"color_error": "196"})
		if got.Error != "196" {
			t.Errorf("Error = %q, want 196", got.Error)
		}
		if got.Muted != Themes["default-dark"].Muted {
			t.Errorf("Muted = %q, want theme value", got.Muted)
		}
	})

	t.Run("env overrides config", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROPED_COLOR_MUTED", "240")

		got := LoadColorConfig(map[string]string{"color_muted": "250"})
		if got.Muted != "240" {
			t.Errorf("Muted = %q, want 240", got.Muted)
		}
	})
}

func TestResolveThemeName_KeepsSuffix(t *testing.T) {
	for _, name := range []string{"mono-dark", "mono-light"} {
		if got := ResolveThemeName(name); got != name {
			t.Errorf("ResolveThemeName(%q) = %q", name, got)
		}
	}
}

func TestThemesHaveBothVariants(t *testing.T) {
	for _, base := range BaseThemeNames {
		for _, variant := range []string{"-dark", "-light"} {
			if _, ok := Themes[base+variant]; !ok {
				t.Errorf("theme %s%s missing", base, variant)
			}
		}
	}
}

func TestStylers(t *testing.T) {
	clearEnv(t)
	Init(false, nil)

	s := NewStyler()
	if s.Enabled() || s.Error("x") != "x" || s.Muted("y") != "y" {
		t.Error("Styler should follow the disabled package state")
	}

	var nop NopStyler
	if nop.Enabled() || nop.Header("h") != "h" {
		t.Error("NopStyler should never style")
	}
}

func TestApply_OutOfRangeRole(t *testing.T) {
	clearEnv(t)
	Init(true, nil)

	if got := Apply(Role(99), "x"); got != "x" {
		t.Errorf("Apply with unknown role: got %q", got)
	}
	if got := Apply(RoleError, "x"); got == "x" {
		t.Error("Apply(RoleError) should style when enabled")
	}
}
