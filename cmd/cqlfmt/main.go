// Command cqlfmt parses CQL scripts and prints them in canonical form.
//
// Usage:
//
//	cqlfmt [flags] [file ...]
//
// With no files, cqlfmt reads standard input.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/internal/highlight"
	"github.com/sqlc-dev/cqlast/internal/normalize"
	"github.com/sqlc-dev/cqlast/parser"
)

type options struct {
	write   bool
	check   bool
	explain bool
	color   bool
	jobs    int
}

func main() {
	var opts options
	flag.BoolVar(&opts.write, "w", false, "Write result to the source file instead of stdout; files with unrecognized CQL are left alone")
	flag.BoolVar(&opts.check, "check", false, "Exit with status 1 if any statement is not recognized")
	flag.BoolVar(&opts.explain, "explain", false, "Print the parsed tree instead of formatted CQL")
	flag.BoolVar(&opts.color, "color", false, "Highlight output for a terminal")
	flag.IntVar(&opts.jobs, "j", runtime.NumCPU(), "Number of files processed concurrently")
	verbose := flag.Bool("v", false, "Log debug output")
	flag.Parse()

	logger := newLogger(os.Stderr, *verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code, err := run(ctx, logger, opts, flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("cqlfmt failed", "error", err)
		os.Exit(2)
	}
	os.Exit(code)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// file is the outcome of processing one input.
type file struct {
	name       string
	output     string
	unknowns   int
	unchanged  bool
	equivalent bool
	skipped    bool // not rewritten because it holds unrecognized text
}

// run processes every input and writes the outputs in argument order. The
// returned code is 1 when -check found unrecognized statements.
func run(ctx context.Context, logger *slog.Logger, opts options, paths []string, stdin io.Reader, stdout io.Writer) (int, error) {
	if len(paths) == 0 {
		if opts.write {
			return 0, fmt.Errorf("cannot use -w with standard input")
		}
		results, err := parser.ParseAll(ctx, stdin)
		if err != nil {
			return 0, err
		}
		f := render(opts, "<stdin>", "", results)
		report(logger, f)
		fmt.Fprint(stdout, f.output)
		if opts.check && f.unknowns > 0 {
			return 1, nil
		}
		return 0, nil
	}

	files := make([]*file, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := processFile(ctx, opts, path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	code := 0
	for _, f := range files {
		report(logger, f)
		if opts.check && f.unknowns > 0 {
			code = 1
		}
		if !opts.write {
			fmt.Fprint(stdout, f.output)
		}
	}
	return code, nil
}

func processFile(ctx context.Context, opts options, path string) (*file, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	results, err := parser.ParseString(ctx, string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	f := render(opts, path, string(src), results)
	if opts.write && f.unknowns > 0 {
		f.skipped = true
		return f, nil
	}
	if opts.write && !f.unchanged {
		if err := os.WriteFile(path, []byte(f.output), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return f, nil
}

// render produces the output for one input according to the flags.
func render(opts options, name, src string, results []*parser.Result) *file {
	f := &file{name: name}
	for _, r := range results {
		if r.HasError {
			f.unknowns += len(r.Unknowns)
			if len(r.Unknowns) == 0 {
				f.unknowns++
			}
		}
	}

	var sb strings.Builder
	switch {
	case opts.explain:
		for _, r := range results {
			for _, stmt := range r.Statements() {
				sb.WriteString(parser.Explain(stmt))
			}
		}
	case opts.color && !opts.write:
		h := highlight.New()
		for _, r := range results {
			if u, ok := r.Statement.(*ast.Unknown); ok {
				sb.WriteString(h.Unrecognized(strings.TrimSpace(u.Text)))
			} else {
				sb.WriteString(h.Highlight(r.Statement.String()))
			}
			for _, u := range r.Unknowns {
				if text := strings.TrimSpace(u.Text); text != "" {
					sb.WriteString(" ")
					sb.WriteString(h.Unrecognized(text))
				}
			}
			sb.WriteString(";\n")
		}
	default:
		sb.WriteString(parser.FormatResults(results))
		if len(results) > 0 {
			sb.WriteString("\n")
		}
	}
	f.output = sb.String()
	f.unchanged = src == f.output
	f.equivalent = normalize.ForFormat(src) == normalize.ForFormat(f.output)
	return f
}

func report(logger *slog.Logger, f *file) {
	if f.unknowns > 0 {
		logger.Warn("unrecognized CQL", "file", f.name, "count", f.unknowns)
	}
	switch {
	case f.skipped:
		logger.Warn("left unformatted", "file", f.name)
	case f.unchanged:
		logger.Debug("already formatted", "file", f.name)
	case f.equivalent:
		logger.Debug("layout changed", "file", f.name, "bytes", len(f.output))
	default:
		logger.Debug("spelling changed", "file", f.name, "bytes", len(f.output))
	}
}
