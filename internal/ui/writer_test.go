package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_Print(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%d%s", 2, " ")
	require.NoError(t, err)
	_, err = w.Println("You sent:", "hi")
	require.NoError(t, err)
	_, err = w.Write([]byte("!"))
	require.NoError(t, err)

	require.Equal(t, "2 You sent: hi\n!", buf.String())
}

func TestWriter_PagerPrintsWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerOverride("less"))

	w.Pager("COMMANDS\n   list\n")
	require.Equal(t, "COMMANDS\n   list\n", buf.String())
}

func TestWriter_PagerCommand(t *testing.T) {
	tests := []struct {
		name string
		opts []WriterOption
		want string
	}{
		{name: "default", opts: []WriterOption{WithEnvGetter(func(string) string { return "" })}, want: defaultPager},
		{name: "env", opts: []WriterOption{WithEnvGetter(func(string) string { return "more" })}, want: "more"},
		{
			name: "config beats env",
			opts: []WriterOption{
				WithEnvGetter(func(string) string { return "more" }),
				WithConfigGetter(func(string) (string, bool) { return "most", true }),
			},
			want: "most",
		},
		{
			name: "override beats config",
			opts: []WriterOption{
				WithConfigGetter(func(string) (string, bool) { return "most", true }),
				WithPagerOverride("cat"),
			},
			want: "cat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriterTo(&bytes.Buffer{}, tt.opts...)
			require.Equal(t, tt.want, w.pagerCommand())
		})
	}
}

func TestWriter_PagerDisabled(t *testing.T) {
	w := NewWriterTo(&bytes.Buffer{}, WithPagerDisabled())
	require.False(t, w.isTerminal())
}
