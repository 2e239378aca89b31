package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/footprint-tools/roped/internal/app"
	"github.com/footprint-tools/roped/internal/cli"
	"github.com/footprint-tools/roped/internal/config"
	"github.com/footprint-tools/roped/internal/console"
	"github.com/footprint-tools/roped/internal/dispatchers"
	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/ui/prompt"
	"github.com/footprint-tools/roped/internal/usage"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

type flags struct {
	command    string
	hasCommand bool
	noColor    bool
	plain      bool
	noHistory  bool
	help       bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func parseFlags(args []string) (flags, *pflag.FlagSet, error) {
	var f flags

	flagSet := pflag.NewFlagSet("roped", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&f.command, "command", "c", "", "run one line and exit")
	flagSet.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	flagSet.BoolVar(&f.plain, "plain", false, "read lines without the interactive editor")
	flagSet.BoolVar(&f.noHistory, "no-history", false, "do not record commands")
	flagSet.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return f, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return f, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	f.hasCommand = flagSet.Changed("command")
	return f, flagSet, nil
}

func run(args []string) int {
	f, flagSet, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roped: %v\n\n%s", err, helpText(flagSet))
		return 2
	}
	if f.help {
		fmt.Fprint(os.Stdout, helpText(flagSet))
		return 0
	}

	opts := app.DefaultOptions()
	opts.StyleEnabled = !f.noColor && isTerminal(os.Stdout)
	opts.HistoryEnabled = opts.HistoryEnabled && !f.noHistory
	opts.PagerDisabled = f.hasCommand

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roped: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(application) }()

	consoleOpts, err := config.ConsoleOptions(application.Config.Get)
	if err != nil {
		application.Logger.Warn("main: invalid console config, using defaults: %v", err)
		fmt.Fprintf(os.Stderr, "roped: invalid config: %v\n", err)
		consoleOpts = console.DefaultOptions()
	}

	session := uuid.NewString()
	root := cli.BuildTree()
	state := cli.NewState(application, session)
	state.Whitespace = consoleOpts.Whitespace

	c := console.New[cli.State](root, state, newSource(f, application, root), application.Output,
		console.WithOptions(consoleOpts),
		console.WithLogger(application.Logger),
		console.WithStyler(application.Styler),
		console.WithHistory(application.History, session),
	)

	if f.hasCommand {
		err := c.Execute(f.command)
		if errors.Is(err, console.ErrStop) {
			return 0
		}
		return usage.ExitCode(err)
	}

	application.Logger.Info("main: session %s started", session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "roped: %v\n", err)
		return 1
	}
	return 0
}

// newSource picks the interactive editor for terminals and a plain line
// reader otherwise.
func newSource(f flags, application *domain.Application, root *dispatchers.Table[cli.State]) console.LineSource {
	interactive := isTerminal(os.Stdin) && isTerminal(os.Stdout)

	if f.plain || !interactive {
		var echo io.Writer
		if interactive {
			echo = os.Stdout
		}
		return console.NewReaderSource(os.Stdin, echo)
	}

	limit := 500
	if v, ok := application.Config.Get("history_limit"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	var lines []string
	if application.History != nil {
		var err error
		if lines, err = application.History.Lines(limit); err != nil {
			application.Logger.Warn("main: could not load history: %v", err)
		}
	}

	return prompt.New(
		prompt.WithHistory(lines),
		prompt.WithHistoryLimit(limit),
		prompt.WithSuggestions(dispatchers.CollectCommands[cli.State](root, "")),
	)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func helpText(flagSet *pflag.FlagSet) string {
	return `roped: a tally console.

Reads commands from the terminal, or from standard input when it is not
a terminal. Separate several commands on one line with ';'. Type "help"
inside the console for the command list.

Usage:
  roped [flags]

Flags:
` + flagSet.FlagUsages()
}
