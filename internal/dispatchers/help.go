package dispatchers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/footprint-tools/roped/internal/ui/style"
)

// HelpEntry describes one routed command for help output.
type HelpEntry struct {
	// Command is the text that selects the command, as typed.
	Command string
	// Usage is the argument syntax following the command.
	Usage   string
	Summary string
}

// HelpEntries walks the handler tree and returns one entry per leaf in
// declaration order. Nested tables are expanded; a fallback is listed
// with a placeholder command.
func HelpEntries[S any](h Handler[S], prefix string) []HelpEntry {
	t, ok := h.(*Table[S])
	if !ok {
		return []HelpEntry{leafEntry(h, strings.TrimSpace(prefix), "")}
	}

	var entries []HelpEntry

	for _, r := range t.routes {
		var command, next string
		switch r.kind {
		case routePrefix:
			command = prefix + r.literal
			next = command
		case routeName:
			command = prefix + r.literal
			next = command + " "
		case routeFallback:
			command = prefix + "<text>"
			entries = append(entries, leafEntry(r.handler, command, r.summary))
			continue
		}

		if _, nested := r.handler.(*Table[S]); nested {
			entries = append(entries, HelpEntries(r.handler, next)...)
			continue
		}
		entries = append(entries, leafEntry(r.handler, command, r.summary))
	}

	return entries
}

func leafEntry(h any, command, summary string) HelpEntry {
	entry := HelpEntry{Command: command, Summary: summary}
	if u, ok := h.(Usager); ok {
		entry.Usage = u.Usage()
	}
	return entry
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(command, usage string) string {
	if usage == "" {
		return style.Info(command)
	}
	return style.Info(command) + " " + style.Muted(usage)
}

// RenderHelp formats entries as an aligned command listing under a title.
func RenderHelp(title string, entries []HelpEntry) string {
	var out bytes.Buffer

	if title != "" {
		out.WriteString(style.Header(title))
		out.WriteString("\n\n")
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(plainUsage(e)))
	}

	out.WriteString("COMMANDS\n")
	for _, e := range entries {
		padding := strings.Repeat(" ", width-len(plainUsage(e)))
		if e.Summary == "" {
			fmt.Fprintf(&out, "   %s\n", formatUsage(e.Command, e.Usage))
			continue
		}
		fmt.Fprintf(&out, "   %s%s  %s\n", formatUsage(e.Command, e.Usage), padding, e.Summary)
	}

	return out.String()
}

func plainUsage(e HelpEntry) string {
	if e.Usage == "" {
		return e.Command
	}
	return e.Command + " " + e.Usage
}
