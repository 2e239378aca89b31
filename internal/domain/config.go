package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `config list`
	Hidden      bool   // Hidden keys are not shown in help or config list
	HideIfEmpty bool   // Only show in config list if explicitly set
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in `config list`.
var ConfigKeys = []ConfigKey{
	// Console
	{
		Name:        "prompt",
		Default:     "> ",
		Description: "Text printed before reading a line",
		Section:     "Console",
	},
	{
		Name:        "counter_suffix",
		Default:     " ",
		Description: "Text printed after the command number on multi-command lines",
		Section:     "Console",
	},
	{
		Name:        "error_prefix",
		Default:     "!",
		Description: "Text printed before error messages",
		Section:     "Console",
	},
	// Parsing
	{
		Name:        "whitespace",
		Default:     ` \t`,
		Description: "Characters separating arguments (Go escapes allowed)",
		Section:     "Parsing",
	},
	{
		Name:        "separators",
		Default:     `\n\r;`,
		Description: "Characters separating commands on one line (Go escapes allowed)",
		Section:     "Parsing",
	},
	{
		Name:        "default_advances_index",
		Default:     "true",
		Description: "Count substituted defaults as consumed arguments in error positions (true/false)",
		Section:     "Parsing",
	},
	// History
	{
		Name:        "enable_history",
		Default:     "true",
		Description: "Record commands in the history database (true/false)",
		Section:     "History",
	},
	{
		Name:        "history_limit",
		Default:     "500",
		Description: "Number of lines recalled by the interactive prompt",
		Section:     "History",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Display
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Clock used in history listings: 24h or 12h",
		Section:     "Display",
	},
	{
		Name:        "pager",
		Description: "Pager for long output such as help (e.g. \"less -FRSX\", \"cat\" to disable)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Display",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Display",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Console", "Parsing", "History", "Logging", "Display"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
