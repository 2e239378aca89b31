package app

import (
	"github.com/footprint-tools/roped/internal/config"
	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/log"
	"github.com/footprint-tools/roped/internal/paths"
	"github.com/footprint-tools/roped/internal/store"
	"github.com/footprint-tools/roped/internal/ui"
	"github.com/footprint-tools/roped/internal/ui/style"
)

// historyKeep is how many history entries survive the pruning done when
// the store is opened.
const historyKeep = 10000

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// History options
	HistoryEnabled bool
	HistoryPath    string
}

// DefaultOptions returns the default application options, read from the
// configuration file.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	historyEnabled, _ := config.Get("enable_history")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:     logEnabled == "true",
		LogLevel:       log.ParseLevel(logLevel),
		StyleEnabled:   true,
		StyleConfig:    styleConfig,
		HistoryEnabled: historyEnabled == "true",
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// A logger that cannot open its file is not worth failing for.
		if l, err := log.New(logPath, opts.LogLevel); err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	var history domain.HistoryStore
	if opts.HistoryEnabled {
		dbPath := opts.HistoryPath
		if dbPath == "" {
			dbPath = paths.HistoryDBPath()
		}
		s, err := store.New(dbPath)
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		if removed, err := s.Prune(historyKeep); err != nil {
			logger.Warn("app: pruning history failed: %v", err)
		} else if removed > 0 {
			logger.Debug("app: pruned %d history entries", removed)
		}
		history = s
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  ui.NewWriter(writerOpts...),
		Styler:  style.NewStyler(),
		History: history,
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// No history, NopLogger, no styling and no pager.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
