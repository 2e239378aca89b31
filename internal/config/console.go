package config

import (
	"fmt"
	"strconv"

	"github.com/footprint-tools/roped/internal/console"
	"github.com/footprint-tools/roped/internal/input"
)

// ParseClass turns a configured character list into a class. Go escapes
// such as \t and \n are expanded.
func ParseClass(value string) (input.Class, error) {
	chars, err := strconv.Unquote(`"` + value + `"`)
	if err != nil {
		return nil, fmt.Errorf("invalid character list %q: %w", value, err)
	}
	if chars == "" {
		return nil, fmt.Errorf("empty character list")
	}
	return input.Chars(chars), nil
}

// ConsoleOptions builds console options from configuration keys, keeping
// the defaults for keys get does not know.
func ConsoleOptions(get func(string) (string, bool)) (console.Options, error) {
	opts := console.DefaultOptions()

	if v, ok := get("prompt"); ok {
		opts.Prompt = v
	}
	if v, ok := get("counter_suffix"); ok {
		opts.CounterSuffix = v
	}
	if v, ok := get("error_prefix"); ok {
		opts.ErrorPrefix = v
	}

	if v, ok := get("whitespace"); ok {
		class, err := ParseClass(v)
		if err != nil {
			return opts, fmt.Errorf("whitespace: %w", err)
		}
		opts.Whitespace = class
	}
	if v, ok := get("separators"); ok {
		class, err := ParseClass(v)
		if err != nil {
			return opts, fmt.Errorf("separators: %w", err)
		}
		opts.Separators = class
	}

	if v, ok := get("default_advances_index"); ok {
		advance, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("default_advances_index: %w", err)
		}
		opts.AdvanceOnDefault = advance
	}

	return opts, nil
}
