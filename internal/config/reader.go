package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/log"
	"github.com/footprint-tools/roped/internal/paths"
)

// ReadLines returns the lines of the config file. A missing or empty file
// is replaced by a commented template listing every visible key.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	lines, err := readFileLines(configPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if len(lines) > 0 {
		return lines, nil
	}

	lines = template()
	if err := WriteLines(lines); err != nil {
		log.Warn("config: could not write default config: %v", err)
	}
	return lines, nil
}

func readFileLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(path, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// template lists every visible key with its default. Optional overrides
// are commented out.
func template() []string {
	lines := []string{
		"# roped configuration",
		"# Edit values below or use: config set <key> <value>",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+quoteValue(key.Default))
	}

	return lines
}
