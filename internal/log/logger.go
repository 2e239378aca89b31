package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/roped/internal/domain"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// sink is the destination shared by a logger and the loggers derived from
// it with Named.
type sink struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	enabled bool
}

// Logger writes levelled lines to a file or writer. It is safe for
// concurrent use.
type Logger struct {
	sink      *sink
	minLevel  Level
	component string
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init initializes the global logger with the given file.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(logPath, minLevel)
		if err == nil {
			SetDefault(l)
		}
	})
	return err
}

// SetDefault replaces the global logger.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

// New creates a logger appending to the file at logPath.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Fix permissions of an existing file before opening it
	if info, err := os.Stat(logPath); err == nil {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(logPath, 0600); err != nil {
				return nil, fmt.Errorf("chmod existing log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		sink:     &sink{out: file, closer: file, enabled: true},
		minLevel: minLevel,
	}, nil
}

// NewTo creates a logger writing to w. Closing it does not close w.
func NewTo(w io.Writer, minLevel Level) *Logger {
	return &Logger{
		sink:     &sink{out: w, enabled: true},
		minLevel: minLevel,
	}
}

// Named returns a logger sharing l's destination whose lines are tagged
// with the component name.
func (l *Logger) Named(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{sink: l.sink, minLevel: l.minLevel, component: component}
}

// Close closes the underlying file, if the logger owns one.
func (l *Logger) Close() error {
	if l == nil || l.sink == nil {
		return nil
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.closer == nil {
		return nil
	}
	err := l.sink.closer.Close()
	l.sink.closer = nil
	l.sink.enabled = false
	return err
}

// SetEnabled enables or disables logging.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil || l.sink == nil {
		return
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || l.sink == nil || level < l.minLevel {
		return
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if !l.sink.enabled {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)

	var logLine string
	if l.component != "" {
		logLine = fmt.Sprintf("[%s] %s: %s: %s\n", timestamp, level.String(), l.component, message)
	} else {
		logLine = fmt.Sprintf("[%s] %s: %s\n", timestamp, level.String(), message)
	}

	if _, err := io.WriteString(l.sink.out, logLine); err != nil {
		// Can't log to the file, output to stderr for critical messages
		if level >= LevelError {
			fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
		}
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Writer returns an io.Writer that logs each write at the given level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// The package-level functions log through the logger installed by Init or
// SetDefault, and do nothing before one is installed.

func Debug(format string, args ...any) { GetLogger().log(LevelDebug, format, args...) }
func Info(format string, args ...any)  { GetLogger().log(LevelInfo, format, args...) }
func Warn(format string, args ...any)  { GetLogger().log(LevelWarn, format, args...) }
func Error(format string, args ...any) { GetLogger().log(LevelError, format, args...) }

// Close closes the global logger.
func Close() error {
	return GetLogger().Close()
}

// GetLogger returns the global logger, nil before one is installed.
func GetLogger() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
)
