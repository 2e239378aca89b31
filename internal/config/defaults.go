package config

import "github.com/footprint-tools/roped/internal/domain"

// Defaults holds the built-in value of every known key. Defaults are never
// written back unless the user sets them.
var Defaults = func() map[string]string {
	defaults := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		defaults[key.Name] = key.Default
	}
	return defaults
}()

// load returns the values set in the config file. An unreadable or
// malformed file counts as empty.
func load() map[string]string {
	lines, err := ReadLines()
	if err != nil {
		return nil
	}
	values, err := Parse(lines)
	if err != nil {
		return nil
	}
	return values
}

// Get returns the value of key from the config file, or its default.
// The bool is false only for keys that are neither set nor known.
func Get(key string) (string, bool) {
	if value, ok := load()[key]; ok {
		return value, true
	}
	value, ok := Defaults[key]
	return value, ok
}

// GetAll returns every default overlaid with the values of the config
// file, unknown keys included.
func GetAll() (map[string]string, error) {
	values := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		values[key] = value
	}
	for key, value := range load() {
		values[key] = value
	}
	return values, nil
}
