// Command seqcheck replays sequence scenarios and reports every assertion
// that does not hold.
//
//	seqcheck run [-v] [FILE...]
//	seqcheck list [FILE...]
//
// Without files, the built-in scenarios are used.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/geofduf/text-sequence/internal/scenario"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, tty))
}

func run(args []string, stdout, stderr io.Writer, tty bool) int {
	app := kingpin.New("seqcheck", "Replay scripted scenarios against text sequences.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')

	verbose := app.Flag("verbose", "print every assertion, not only failures").Short('v').Envar("SEQCHECK_VERBOSE").Bool()
	color := app.Flag("color", "colorize output").Default("auto").Envar("SEQCHECK_COLOR").Enum("auto", "always", "never")
	logLevel := app.Flag("log-level", "log level").Default("warn").Envar("SEQCHECK_LOG_LEVEL").Enum("debug", "info", "warn", "error")

	runCmd := app.Command("run", "run scenarios").Default()
	runFiles := runCmd.Arg("files", "scenario files").Strings()
	listCmd := app.Command("list", "list scenario names")
	listFiles := listCmd.Arg("files", "scenario files").Strings()

	cmd, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "seqcheck: %s\n", err)
		return exitUsage
	}

	useColor := shouldUseColor(*color, tty)
	logger := newLogger(stderr, *logLevel, useColor)

	switch cmd {
	case runCmd.FullCommand():
		scenarios, err := loadScenarios(*runFiles)
		if err != nil {
			logger.Error().Err(err).Msg("cannot load scenarios")
			return exitUsage
		}
		p := &printer{w: stdout, color: useColor, verbose: *verbose}
		runner := scenario.NewRunner(logger)
		for _, sc := range scenarios {
			p.report(runner.Run(sc))
		}
		p.summary()
		if p.failed > 0 {
			return exitFailed
		}
		return exitOK
	case listCmd.FullCommand():
		scenarios, err := loadScenarios(*listFiles)
		if err != nil {
			logger.Error().Err(err).Msg("cannot load scenarios")
			return exitUsage
		}
		for _, sc := range scenarios {
			fmt.Fprintf(stdout, "%s (%d steps)\n", sc.Name, len(sc.Steps))
		}
		return exitOK
	}
	return exitUsage
}

func loadScenarios(files []string) ([]scenario.Scenario, error) {
	if len(files) == 0 {
		return scenario.Builtin(), nil
	}
	var scenarios []scenario.Scenario
	for _, path := range files {
		x, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, x...)
	}
	return scenarios, nil
}

func newLogger(w io.Writer, level string, color bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = !color
		cw.TimeFormat = "15:04:05"
	})).Level(lvl).With().Timestamp().Logger()
}

func shouldUseColor(mode string, tty bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return tty
}
