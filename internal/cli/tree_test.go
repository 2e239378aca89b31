package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/footprint-tools/roped/internal/console"
	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/input"
	"github.com/footprint-tools/roped/internal/testutil"
	"github.com/footprint-tools/roped/internal/ui"
	"github.com/footprint-tools/roped/internal/ui/style"
	"github.com/stretchr/testify/require"
)

type memConfig struct {
	values map[string]string
	err    error
}

func (m *memConfig) Get(key string) (string, bool) {
	if v, ok := m.values[key]; ok {
		return v, true
	}
	return domain.GetDefaultValue(key)
}

func (m *memConfig) GetAll() (map[string]string, error) {
	all := make(map[string]string)
	for _, key := range domain.ConfigKeys {
		all[key.Name] = key.Default
	}
	for k, v := range m.values {
		all[k] = v
	}
	return all, nil
}

func (m *memConfig) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *memConfig) Unset(key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func newTestConsole(t *testing.T, opts ...console.Option) (*console.Console[State], *State, *bytes.Buffer) {
	t.Helper()
	style.Init(false, nil)

	out := &bytes.Buffer{}
	state := &State{
		Counters: make(map[string]int),
		Config:   &memConfig{values: map[string]string{}},
		Out:      ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Session:  "test-session",
	}
	c := console.New[State](BuildTree(), state, nil, out, opts...)
	return c, state, out
}

func TestTally_Lines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "add and show",
			lines:    []string{"add apples; add apples 4; $apples"},
			expected: "1 apples = 1\n2 apples = 5\n3 apples = 5\n",
		},
		{
			name:     "show with space after prefix",
			lines:    []string{"add pears 2", "$ pears"},
			expected: "pears = 2\npears = 2\n",
		},
		{
			name:     "set requires existing counter",
			lines:    []string{"set pears 3"},
			expected: "!no counter named 'pears' (use --force to create it)\n",
		},
		{
			name:     "set with force and note",
			lines:    []string{"set pears 3 --force --note ripe", "list"},
			expected: "pears = 3\npears = 3\n#1 pears: ripe\n",
		},
		{
			name:     "set with short flags",
			lines:    []string{"set pears 7 -f -n green"},
			expected: "pears = 7\n",
		},
		{
			name:     "scope",
			lines:    []string{"scope 5 word --flag", "scope -3 word"},
			expected: "scope 5 word true\nscope -3 word false\n",
		},
		{
			name:     "unknown counter suggests a close name",
			lines:    []string{"add apples", "$apple"},
			expected: "apples = 1\n!no counter named 'apple' (did you mean 'apples'?)\n",
		},
		{
			name:     "bad amount",
			lines:    []string{"add apples x"},
			expected: "!unable to cast argument 'x' (3)\n",
		},
		{
			name:     "missing name",
			lines:    []string{"add"},
			expected: "!missing argument (2)\n",
		},
		{
			name:     "clear",
			lines:    []string{"add a", ":clear", "list"},
			expected: "a = 1\ncounters cleared\nnothing tallied yet\n",
		},
		{
			name:     "notes",
			lines:    []string{"note buy  more   apples", "note", "list"},
			expected: "!nothing to note\n#1 buy  more   apples\n",
		},
		{
			name:     "fallback echo",
			lines:    []string{"hello there"},
			expected: "You sent: hello there\n",
		},
		{
			name:     "extra argument",
			lines:    []string{"list everything"},
			expected: "!unexpected argument 'everything' (2)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, out := newTestConsole(t)
			for _, line := range tt.lines {
				_ = c.Execute(line)
			}
			require.Equal(t, tt.expected, out.String())
		})
	}
}

func TestTally_UnknownMetaCommand(t *testing.T) {
	c, _, out := newTestConsole(t)

	err := c.Execute(":x")
	require.Error(t, err)
	require.Contains(t, out.String(), "!invalid scope 'x' (1)")
}

func TestTally_Quit(t *testing.T) {
	for _, line := range []string{":q", ":quit", ": quit"} {
		t.Run(line, func(t *testing.T) {
			c, state, _ := newTestConsole(t)

			err := c.Execute(line + "; add a")
			require.True(t, errors.Is(err, console.ErrStop))
			require.Empty(t, state.Counters)
		})
	}
}

func TestTally_Config(t *testing.T) {
	c, state, out := newTestConsole(t)
	cfg := state.Config.(*memConfig)

	require.NoError(t, c.Execute("config set prompt tally> "))
	require.Equal(t, "tally>", cfg.values["prompt"])

	require.NoError(t, c.Execute("config get prompt"))
	require.NoError(t, c.Execute("config unset prompt"))
	require.NotContains(t, cfg.values, "prompt")

	require.Equal(t, "prompt=tally>\ntally>\nprompt=>  (default)\n", out.String())
}

func TestTally_ConfigErrors(t *testing.T) {
	c, state, out := newTestConsole(t)

	require.Error(t, c.Execute("config get promt"))
	require.Equal(t, "!unknown config key 'promt' (did you mean 'prompt'?)\n", out.String())

	out.Reset()
	require.Error(t, c.Execute("config get nonsense"))
	require.Equal(t, "!unknown config key 'nonsense'\n", out.String())

	out.Reset()
	state.Config.(*memConfig).err = errors.New("disk full")
	require.Error(t, c.Execute("config set theme mono"))
	require.Equal(t, "!could not save config: disk full\n", out.String())
}

func TestTally_ConfigList(t *testing.T) {
	c, _, out := newTestConsole(t)

	require.NoError(t, c.Execute("config set theme ocean; config list"))

	require.Contains(t, out.String(), "theme=ocean\n")
	require.Contains(t, out.String(), "prompt=> \n")
	require.NotContains(t, out.String(), "color_error")
}

func TestTally_History(t *testing.T) {
	store := testutil.NewTestStore(t)
	c, state, out := newTestConsole(t, console.WithHistory(store, "test-session"))
	state.History = store

	_ = c.Execute("add   a")
	_ = c.Execute("add a x")
	out.Reset()

	require.NoError(t, c.Execute("history"))
	require.Contains(t, out.String(), "add a\n")
	require.Contains(t, out.String(), "add a x  unable to cast argument 'x' (3)\n")
}

func TestTally_HistoryUsesConsoleWhitespace(t *testing.T) {
	store := testutil.NewTestStore(t)
	opts := console.DefaultOptions()
	opts.Whitespace = input.Chars(" ,")

	c, state, out := newTestConsole(t, console.WithOptions(opts), console.WithHistory(store, "test-session"))
	state.History = store
	state.Whitespace = opts.Whitespace

	require.NoError(t, c.Execute("add,,apples"))
	out.Reset()

	require.NoError(t, c.Execute("history 1"))
	require.Contains(t, out.String(), "  add apples\n")
}

func TestTally_HistoryKeepsSession(t *testing.T) {
	store := testutil.NewTestStore(t)
	c, _, _ := newTestConsole(t, console.WithHistory(store, "test-session"))

	require.NoError(t, c.Execute("add a"))

	entries, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "test-session", entries[0].Session)
	require.False(t, domain.IsValidConfigKey("last_session"))
}

func TestTally_HistoryErrors(t *testing.T) {
	c, _, out := newTestConsole(t)

	require.Error(t, c.Execute("history"))
	require.Equal(t, "!history is disabled\n", out.String())

	c, state, out := newTestConsole(t)
	state.History = testutil.NewTestStore(t)
	require.Error(t, c.Execute("history 0"))
	require.Equal(t, "!limit must be positive, got 0\n", out.String())
}

func TestTally_Help(t *testing.T) {
	c, _, out := newTestConsole(t)

	require.NoError(t, c.Execute("help"))

	help := out.String()
	require.Contains(t, help, "roped: tally console\n\nCOMMANDS\n")
	require.Contains(t, help, ":q")
	require.Contains(t, help, "$ <name>")
	require.Contains(t, help, "add <name> [amount=1]")
	require.Contains(t, help, "set <name> <value> [--force] [--note <note>]")
	require.Contains(t, help, "config set <key> [value...]")
	require.Contains(t, help, "<text>")
	require.Contains(t, help, "Echo anything else")
}

func TestCommands(t *testing.T) {
	commands := Commands()

	for _, want := range []string{":", ":q", ":quit", "$", "add", "config", "config get", "config list", "history", "help"} {
		require.Contains(t, commands, want)
	}
}

func TestNewState(t *testing.T) {
	app := &domain.Application{Config: &memConfig{}, Output: ui.NewWriter()}

	s := NewState(app, "abc")

	require.NotNil(t, s.Counters)
	require.Equal(t, "abc", s.Session)
	require.Same(t, app.Config, s.Config)
	require.Nil(t, s.History)
	require.Equal(t, input.DefaultWhitespace, s.Whitespace)
}
