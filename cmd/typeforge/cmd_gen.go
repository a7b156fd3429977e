package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/typeforge/typeforge/internal/gen"
	"github.com/typeforge/typeforge/internal/loader"
	"github.com/typeforge/typeforge/internal/schema"
)

var genFlags struct {
	rootName   string
	selectExpr string
	refsPath   string
	format     string
	goPackage  string
	outPath    string
	check      bool
}

var genCmd = &cobra.Command{
	Use:   "gen <sample>...",
	Short: "Generate Go or TypeScript type declarations from samples",
	Long: `Infer a type catalog from each sample file and render it as source
declarations.

Usage:
  typeforge gen user.json                       # Go structs to stdout
  typeforge gen user.json --format ts           # TypeScript interfaces
  typeforge gen api/*.json --out gen/           # one output file per sample
  typeforge gen user.json --select .data.user   # infer a subtree only
  typeforge gen user.json --refs money.json     # pin well-known shapes

Reference schema files map type names to field kind maps, for example
{"Money": {"amount": "number", "currency": "string"}}. Any object in the
sample whose fields cover a reference's fields is typed by that name
instead of getting a generated type.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGen,
}

func init() {
	f := genCmd.Flags()
	f.StringVar(&genFlags.rootName, "root-name", "", "Root type name (default: derived from the sample file name)")
	f.StringVar(&genFlags.selectExpr, "select", "", "jq expression applied to each sample before inference")
	f.StringVar(&genFlags.refsPath, "refs", "", "Path to a reference schema document (JSON or YAML)")
	f.StringVar(&genFlags.format, "format", "go", "Output format: go or ts")
	f.StringVar(&genFlags.goPackage, "package", "", "Go package name (default: types)")
	f.StringVarP(&genFlags.outPath, "out", "o", "", "Output file, or directory when given multiple samples (default: stdout)")
	f.BoolVar(&genFlags.check, "check", false, "Validate each sample against its own exported JSON Schema")
}

func runGen(cmd *cobra.Command, args []string) error {
	format, err := gen.ParseFormat(genFlags.format)
	if err != nil {
		return err
	}
	if len(args) > 1 && genFlags.outPath == "" {
		return fmt.Errorf("--out directory is required with multiple samples")
	}

	inf, err := newInference(genFlags.refsPath)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		src, err := genOne(inf, args[0], format)
		if err != nil {
			return err
		}
		if genFlags.outPath == "" {
			fmt.Fprint(cmd.OutOrStdout(), src)
			return nil
		}
		return writeOutput(genFlags.outPath, src)
	}

	if err := os.MkdirAll(genFlags.outPath, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.GenWorkers)
	for _, path := range args {
		eg.Go(func() error {
			src, err := genOne(inf, path, format)
			if err != nil {
				return err
			}
			dest := filepath.Join(genFlags.outPath, outputName(path, format))
			if err := writeOutput(dest, src); err != nil {
				return err
			}
			slog.Info("generated", "sample", path, "output", dest)
			return nil
		})
	}
	return eg.Wait()
}

func genOne(inf *inference, path string, format gen.Format) (string, error) {
	res, v, err := inf.run(path, genFlags.selectExpr, genFlags.rootName)
	if err != nil {
		return "", err
	}

	// One generator per sample; its caser is not safe for concurrent use.
	g, err := gen.New()
	if err != nil {
		return "", err
	}

	if genFlags.check {
		check, err := schema.CheckRoundTrip(res, v)
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		if !check.Valid {
			return "", fmt.Errorf("%s: %s:\n  %s", path, check.Summary, strings.Join(check.Errors, "\n  "))
		}
	}

	return g.Render(res, format, genFlags.goPackage)
}

func outputName(samplePath string, format gen.Format) string {
	base := loader.RootNameFor(samplePath)
	if format == gen.FormatTypeScript {
		return base + ".ts"
	}
	return base + ".go"
}

func writeOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
