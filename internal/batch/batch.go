// Package batch formats many files concurrently.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mcncl/jsonist/internal/errors"
	"github.com/mcncl/jsonist/internal/formatter"
	"github.com/mcncl/jsonist/internal/input"
	"github.com/mcncl/jsonist/internal/pipeline"
)

// Mode selects what happens to a file once it has been formatted.
type Mode int

const (
	// ModePrint only computes the formatted output.
	ModePrint Mode = iota
	// ModeCheck reports files whose contents differ from the formatted output.
	ModeCheck
	// ModeWrite rewrites files whose contents differ.
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeWrite:
		return "write"
	default:
		return "print"
	}
}

// Options configures a batch run
type Options struct {
	Mode   Mode
	Jobs   int // <= 0 means GOMAXPROCS
	Format *formatter.FormatConfig
	Logger zerolog.Logger
}

// Result is the outcome for one file. Err is set when the file could not be
// read, validated or written; it never aborts the other files.
type Result struct {
	Path    string
	Input   string
	Output  string
	Changed bool
	Written bool
	Err     error
}

// Run formats every file in paths with at most opts.Jobs files in flight.
// Results are returned in the order of paths. The returned error is only
// set when ctx is cancelled.
func Run(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	logger := opts.Logger.With().Str("component", "batch").Str("mode", opts.Mode.String()).Logger()
	p := pipeline.New(opts.Logger)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// each goroutine owns results[i]
			results[i] = formatFile(p, path, opts)
			if err := results[i].Err; err != nil {
				logger.Debug().Str("file", path).Err(err).Msg("file failed")
			} else {
				logger.Debug().
					Str("file", path).
					Bool("changed", results[i].Changed).
					Bool("written", results[i].Written).
					Msg("file processed")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatFile(p *pipeline.Pipeline, path string, opts Options) Result {
	result := Result{Path: path}

	content, err := input.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Input = content

	output, err := p.Format(content, opts.Format)
	if err != nil {
		result.Err = errors.NewParsingError(fmt.Sprintf("invalid JSON in '%s'", path), err)
		return result
	}
	result.Output = output
	result.Changed = !Formatted(content, output)

	if opts.Mode == ModeWrite && result.Changed {
		// keep a final newline the file already had
		if strings.HasSuffix(content, "\n") && !strings.HasSuffix(output, "\n") {
			output += "\n"
		}
		if err := input.WriteFile(path, output); err != nil {
			result.Err = err
			return result
		}
		result.Written = true
	}

	return result
}

// Formatted reports whether content already is output. Only root objects
// are printed with a final newline, so output followed by one newline also
// counts.
func Formatted(content, output string) bool {
	return content == output || content == output+"\n"
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Unformatted returns the valid files whose contents are not formatted.
func Unformatted(results []Result) []Result {
	var unformatted []Result
	for _, r := range results {
		if r.Err == nil && r.Changed {
			unformatted = append(unformatted, r)
		}
	}
	return unformatted
}

// ExpandPaths replaces every directory in paths with the .json files found
// beneath it, sorted. Plain files are kept as given, even without a .json
// extension.
func ExpandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			// missing files are reported per file by Run
			files = append(files, path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".json") {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to list directory '%s'", path), err)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}
