// Package paths locates the files roped keeps outside the working
// directory: the rc file, the log and the history database.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "roped"

// underHome joins elems below the home directory, or below "." when the
// home directory is unknown.
func underHome(elems ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(append([]string{home}, elems...)...)
}

// AppDataDir is the roaming per-user directory holding the log:
// os.UserConfigDir()/roped. It is created if needed.
func AppDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	dir := filepath.Join(base, appDirName)
	_ = os.MkdirAll(dir, 0700)
	return dir
}

// AppLocalDataDir is the machine-local directory holding the history:
// ~/Library/Application Support/roped on macOS, %LOCALAPPDATA%\roped on
// Windows and $XDG_DATA_HOME/roped (default ~/.local/share/roped) elsewhere.
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = underHome("Library", "Application Support")
	case "windows":
		if base = os.Getenv("LOCALAPPDATA"); base == "" {
			base = underHome("AppData", "Local")
		}
	default:
		if base = os.Getenv("XDG_DATA_HOME"); base == "" {
			base = underHome(".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of the key=value configuration file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ropedrc"), nil
}

// LogFilePath returns the path of the log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "roped.log")
}

// HistoryDBPath returns the path of the command history database,
// creating its directory.
func HistoryDBPath() string {
	dir := AppLocalDataDir()
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "history.db")
}
