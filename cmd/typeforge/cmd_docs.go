package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typeforge/typeforge/internal/docs"
)

var docsFlags struct {
	rootName   string
	selectExpr string
	refsPath   string
	title      string
	outPath    string
}

var docsCmd = &cobra.Command{
	Use:   "docs <sample>",
	Short: "Render an inferred catalog as a browsable HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocs,
}

func init() {
	f := docsCmd.Flags()
	f.StringVar(&docsFlags.rootName, "root-name", "", "Root type name (default: derived from the sample file name)")
	f.StringVar(&docsFlags.selectExpr, "select", "", "jq expression applied to the sample before inference")
	f.StringVar(&docsFlags.refsPath, "refs", "", "Path to a reference schema document (JSON or YAML)")
	f.StringVar(&docsFlags.title, "title", "", "Page title (default: the root type name)")
	f.StringVarP(&docsFlags.outPath, "out", "o", "typeforge-docs.html", "Output file")
}

func runDocs(cmd *cobra.Command, args []string) error {
	inf, err := newInference(docsFlags.refsPath)
	if err != nil {
		return err
	}
	res, _, err := inf.run(args[0], docsFlags.selectExpr, docsFlags.rootName)
	if err != nil {
		return err
	}

	r, err := docs.New()
	if err != nil {
		return err
	}
	if err := r.WriteFile(res, docsFlags.title, docsFlags.outPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Documentation written to: %s\n", docsFlags.outPath)
	return nil
}
