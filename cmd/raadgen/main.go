// raadgen generates little- and big-endian binary codecs for Go structs
// annotated with @raad.
//
// Typically run by go generate:
//
//	//go:generate go run github.com/bend-n/raad-codegen/cmd/raadgen
//
//	// @raad
//	type Header struct {
//		Magic  [4]byte `raad:"equals=PNGMagic"`
//		Width  uint32
//		Height uint32
//	}
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/bend-n/raad-codegen/internal/analyzer"
	"github.com/bend-n/raad-codegen/internal/codegen"
	"github.com/bend-n/raad-codegen/internal/config"
	"github.com/bend-n/raad-codegen/internal/gen"
	"github.com/bend-n/raad-codegen/internal/log"
	"github.com/bend-n/raad-codegen/internal/parser"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "raadgen",
		Usage:     "Generate binary codecs for @raad records",
		ArgsUsage: "[files...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     generateFlags(),
		Action:    generate,
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate <file>_raad.go for each file, $GOFILE when none is given",
				ArgsUsage: "[files...]",
				Flags:     generateFlags(),
				Action:    generate,
			},
			{
				Name:      "inspect",
				Usage:     "Print the records of a file, their fields and generated bounds",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "runtime",
						Usage: "Runtime package identifier used in bounds",
						Value: "wire",
					},
				},
				Action: inspect,
			},
		},
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file (default " + config.DefaultFile + " if present)",
		},
		&cli.StringFlag{
			Name:  "suffix",
			Usage: "Output file suffix",
		},
		&cli.StringFlag{
			Name:  "runtime",
			Usage: "Import path of the runtime package",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
		&cli.IntFlag{
			Name:  "jobs",
			Usage: "Files generated concurrently",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print generated code instead of writing files",
		},
	}
}

// loadConfig applies flags over the config file over defaults
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadWithFallback(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("suffix") {
		cfg.Suffix = c.String("suffix")
	}
	if c.IsSet("runtime") {
		cfg.Runtime = c.String("runtime")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("jobs") {
		cfg.Jobs = c.Int("jobs")
	}
	return cfg, nil
}

func generate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	files := c.Args().Slice()
	if len(files) == 0 {
		gofile := os.Getenv("GOFILE")
		if gofile == "" {
			return errors.New("no input files and $GOFILE is not set")
		}
		files = []string{gofile}
	}

	_, err = gen.Run(c.Context, files, gen.Options{
		Suffix:  cfg.Suffix,
		Runtime: cfg.Runtime,
		Header:  cfg.Header,
		Jobs:    cfg.Jobs,
		DryRun:  c.Bool("dry-run"),
		Stdout:  c.App.Writer,
	}, logger)
	return err
}

func inspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: raadgen inspect <file.go>")
	}

	file, err := parser.ParseFile(c.Args().First())
	if err != nil {
		return err
	}
	res, err := analyzer.Analyze(file)
	if err != nil {
		return err
	}

	w := c.App.Writer
	if len(res.Records) == 0 {
		fmt.Fprintln(w, "No types with @raad annotations found")
		return nil
	}

	rt := c.String("runtime")
	for _, rec := range res.Records {
		s := rec.Schema
		size := "dynamic"
		if rec.Fixed() {
			size = fmt.Sprint(rec.Size)
		}
		fmt.Fprintf(w, "\n%s%s (codec=%s, size=%s)\n", s.Name, s.GenericClause, directions(s.Anno), size)
		fmt.Fprintln(w, "Fields:")
		for _, f := range rec.Fields {
			fmt.Fprintf(w, "  %-3d %-15s %-10s %-20s %s", f.Field.Index, f.Field.Name(), f.Field.Kind, f.Field.Type, f.Plan.Kind)
			if f.Field.Markers.Equals {
				fmt.Fprintf(w, " equals=%s", f.Field.Markers.EqualsTo)
			}
			fmt.Fprintln(w)
		}

		if !s.Generic() {
			continue
		}
		fmt.Fprintln(w, "Bounds:")
		for _, o := range codegen.Orders {
			if s.Anno.Write {
				fmt.Fprintf(w, "  write %s %s\n", o.Suffix, analyzer.Clause(analyzer.InjectBounds(s.TypeParams, o.Writer(rt))))
			}
			if s.Anno.Read {
				fmt.Fprintf(w, "  read  %s %s\n", o.Suffix, analyzer.Clause(analyzer.InjectBounds(s.TypeParams, o.Reader(rt))))
			}
		}
	}
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "\nwarning: %s\n", warning)
	}
	return nil
}

func directions(anno *parser.TypeAnnotation) string {
	var d []string
	if anno.Write {
		d = append(d, "write")
	}
	if anno.Read {
		d = append(d, "read")
	}
	if len(d) == 2 {
		return "both"
	}
	return strings.Join(d, "")
}
