package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/mcncl/jsonist/internal/batch"
	"github.com/mcncl/jsonist/internal/config"
	"github.com/mcncl/jsonist/internal/errors"
	"github.com/mcncl/jsonist/internal/input"
	"github.com/mcncl/jsonist/internal/pipeline"
	"github.com/mcncl/jsonist/internal/report"
)

// CLI defines the command-line interface
var CLI struct {
	Files       []string `arg:"" optional:"" help:"JSON files or directories to format. If none are given, reads from stdin." type:"path"`
	Input       string   `help:"Path to a single input JSON file." short:"i" type:"path"`
	Output      string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent      string   `help:"Indentation: two, four or tab (default four)."`
	Write       bool     `help:"Rewrite files in place instead of printing them." short:"w"`
	Check       bool     `help:"Report files that are not formatted and exit non-zero." short:"c"`
	Config      string   `help:"Path to a config file. Defaults to .jsonist.yml, .jsonist.yaml or .jsonist.toml in this or a parent directory." type:"path"`
	ErrorFormat string   `help:"Error report format: text or json." name:"error-format"`
	Color       string   `help:"Colour error reports: auto, always or never."`
	Jobs        int      `help:"Number of files formatted in parallel (default GOMAXPROCS)." short:"j"`
	Debug       bool     `help:"Enable debug logging." short:"d"`
	Version     bool     `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Logger zerolog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

// errReported means the failure has already been written by the reporter.
var errReported = stderrors.New("errors reported")

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonist"),
		kong.Description("A validating JSON pretty-printer"),
		kong.UsageOnError(),
	)

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonist version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	ctx := &Context{
		Config: cfg,
		Logger: newLogger(os.Stderr, cfg.Dev.Debug),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	if err := run(ctx); err != nil {
		if !stderrors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		}
		os.Exit(1)
	}
}

// loadConfig combines the config file with the command line flags
func loadConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, &config.Config{
		Indent:      CLI.Indent,
		ErrorFormat: CLI.ErrorFormat,
		Color:       CLI.Color,
		Jobs:        CLI.Jobs,
		Dev:         config.DevConfig{Debug: CLI.Debug},
	})
	if err != nil {
		return nil, errors.NewConfigError(err.Error(), err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// run executes the main program logic
func run(ctx *Context) error {
	if CLI.Check && CLI.Write {
		return errors.NewConfigError("--check and --write cannot be used together", errors.ErrInvalidOption)
	}
	if CLI.Write && CLI.Output != "" {
		return errors.NewConfigError("--write and --output cannot be used together", errors.ErrInvalidOption)
	}

	paths := CLI.Files
	if CLI.Input != "" {
		paths = append([]string{CLI.Input}, paths...)
	}

	reporter := report.NewReporter(ctx.Stderr, ctx.Config.ErrorFormat, useColor(ctx.Config.Color, ctx.Stderr))

	var err error
	if len(paths) == 0 {
		err = runStdin(ctx, reporter)
	} else {
		err = runFiles(ctx, reporter, paths)
	}

	if flushErr := reporter.Flush(); flushErr != nil {
		return errors.NewOutputError("failed to write error report", flushErr)
	}
	ctx.Logger.Debug().Int("diagnostics", reporter.Count()).Err(err).Msg("run finished")
	return err
}

// runStdin formats a single document read from a pipe or pasted into the
// terminal.
func runStdin(ctx *Context, reporter *report.Reporter) error {
	if CLI.Write {
		return errors.NewConfigError("--write needs at least one file", errors.ErrInvalidOption)
	}

	content, err := readStdin(ctx)
	if err != nil {
		return err
	}

	output, err := pipeline.New(ctx.Logger).Format(content, ctx.Config.FormatConfig())
	if err != nil {
		if reportErr := reporter.Report("", content, err); reportErr != nil {
			return errors.NewOutputError("failed to write error report", reportErr)
		}
		return errReported
	}

	if CLI.Check {
		// stdout output always ends with a newline, so accept either form
		if !batch.Formatted(content, output) {
			return errors.ErrNotFormatted
		}
		return nil
	}

	return writeOutput(ctx, output)
}

func readStdin(ctx *Context) (string, error) {
	if f, ok := ctx.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return input.ReadInteractive(f, ctx.Stderr)
	}
	return input.ReadAll(ctx.Stdin)
}

// runFiles formats, checks or rewrites every file in paths.
func runFiles(ctx *Context, reporter *report.Reporter, paths []string) error {
	files, err := batch.ExpandPaths(paths)
	if err != nil {
		return err
	}
	if CLI.Output != "" && len(files) > 1 {
		return errors.NewConfigError("--output can only be used with a single input file", errors.ErrInvalidOption)
	}

	mode := batch.ModePrint
	switch {
	case CLI.Check:
		mode = batch.ModeCheck
	case CLI.Write:
		mode = batch.ModeWrite
	}

	results, err := batch.Run(context.Background(), files, batch.Options{
		Mode:   mode,
		Jobs:   ctx.Config.Jobs,
		Format: ctx.Config.FormatConfig(),
		Logger: ctx.Logger,
	})
	if err != nil {
		return errors.NewFormatError("batch run interrupted", err)
	}

	for _, r := range results {
		switch {
		case r.Err != nil:
			if err := reporter.Report(r.Path, r.Input, r.Err); err != nil {
				return errors.NewOutputError("failed to write error report", err)
			}
		case mode == batch.ModeCheck && r.Changed:
			if _, err := fmt.Fprintln(ctx.Stdout, r.Path); err != nil {
				return errors.NewOutputError("failed to write to stdout", err)
			}
		case mode == batch.ModePrint:
			if err := writeOutput(ctx, r.Output); err != nil {
				return err
			}
		}
	}

	if len(batch.Failed(results)) > 0 {
		return errReported
	}
	if mode == batch.ModeCheck && len(batch.Unformatted(results)) > 0 {
		return errors.ErrNotFormatted
	}
	return nil
}

// writeOutput writes a formatted document to the output file or stdout.
// Files receive the output verbatim; stdout always ends with a newline.
func writeOutput(ctx *Context, output string) error {
	if CLI.Output != "" {
		if err := input.WriteFile(CLI.Output, output); err != nil {
			return err
		}
		ctx.Logger.Debug().Str("file", CLI.Output).Msg("output written")
		return nil
	}

	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	if _, err := io.WriteString(ctx.Stdout, output); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// useColor decides whether error reports written to w are coloured.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
