package config

import "strings"

// lineKey returns the key a config line assigns, if it assigns one.
func lineKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(key), true
}

// Set assigns value to key in place, keeping an inline comment, or appends
// the assignment. It reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		if k, ok := lineKey(line); !ok || k != key {
			continue
		}

		updated := key + "=" + value
		_, old, _ := strings.Cut(line, "=")
		if idx := strings.Index(old, " #"); idx >= 0 {
			updated += " " + strings.TrimSpace(old[idx:])
		}
		lines[i] = updated
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line assigning key. It reports whether any was dropped.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, ok := lineKey(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
