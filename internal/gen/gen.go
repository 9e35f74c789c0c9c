// Package gen drives code generation for source files: parse, analyze,
// render and write, one independent pipeline per file.
package gen

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/bend-n/raad-codegen/internal/analyzer"
	"github.com/bend-n/raad-codegen/internal/codegen"
	"github.com/bend-n/raad-codegen/internal/log"
	"github.com/bend-n/raad-codegen/internal/parser"
)

// Options configures a generation run
type Options struct {
	Suffix  string
	Runtime string
	Header  []string
	Jobs    int
	DryRun  bool      // print generated code instead of writing it
	Stdout  io.Writer // dry-run destination; os.Stdout if nil
}

// Output is the result of generating one source file
type Output struct {
	Source   string
	Path     string // generated file; empty when the source has no records
	Code     []byte
	Records  int
	Warnings []string
}

// File generates the code for one source file without writing it
func File(source string, opts Options) (*Output, error) {
	file, err := parser.ParseFile(source)
	if err != nil {
		return nil, err
	}
	res, err := analyzer.Analyze(file)
	if err != nil {
		return nil, err
	}

	out := &Output{Source: source, Records: len(res.Records), Warnings: res.Warnings}
	if len(res.Records) == 0 {
		return out, nil
	}

	out.Path = codegen.OutputName(source, opts.Suffix)
	out.Code, err = codegen.RenderFile(res, codegen.Options{
		Runtime:  opts.Runtime,
		Header:   opts.Header,
		Filename: filepath.Base(out.Path),
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Run generates every source file, up to opts.Jobs at a time. Files are
// independent: a failing file is not written and fails the run, the others
// are unaffected unless they had not started yet. Outputs are returned in
// input order.
func Run(ctx context.Context, sources []string, opts Options, logger log.Logger) ([]*Output, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}

	outputs := make([]*Output, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l := logger.With("file", source)

			out, err := File(source, opts)
			if err != nil {
				return fmt.Errorf("generate %s: %w", source, err)
			}
			for _, w := range out.Warnings {
				l.Warn(w)
			}
			if out.Path == "" {
				l.Debug("no @raad records")
				outputs[i] = out
				return nil
			}

			if !opts.DryRun {
				if err := os.WriteFile(out.Path, out.Code, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", out.Path, err)
				}
			}
			l.Infof("generated %d records into %s", out.Records, out.Path)
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.DryRun {
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		for _, out := range outputs {
			if out.Path == "" {
				continue
			}
			if _, err := fmt.Fprintf(stdout, "// %s\n%s", out.Path, out.Code); err != nil {
				return nil, err
			}
		}
	}
	return outputs, nil
}
