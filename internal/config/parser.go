package config

import (
	"fmt"
	"strconv"
	"strings"
)

const byteOrderMark = "\uFEFF"

// Parse turns config file lines into a key/value map. Blank lines and lines
// starting with '#' are ignored; duplicate keys resolve to the last value.
// Double-quoted values are unquoted, which keeps leading and trailing spaces.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquoteValue(strings.TrimSpace(value))
	}

	return cfg, nil
}

// quoteValue quotes values whose surrounding whitespace would otherwise be
// lost when the file is parsed back.
func quoteValue(value string) string {
	if value == "" || strings.TrimSpace(value) == value {
		return value
	}
	return strconv.Quote(value)
}

func unquoteValue(value string) string {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return value
	}
	unquoted, err := strconv.Unquote(value)
	if err != nil {
		return value
	}
	return unquoted
}
