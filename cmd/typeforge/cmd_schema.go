package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typeforge/typeforge/internal/schema"
)

var schemaFlags struct {
	rootName   string
	selectExpr string
	refsPath   string
	outPath    string
}

var schemaCmd = &cobra.Command{
	Use:   "schema <sample>",
	Short: "Export an inferred catalog as a JSON Schema document",
	Long: `Infer a type catalog from the sample and export it as a JSON Schema
(draft 2020-12) document with one $defs entry per type and a root $ref.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchema,
}

func init() {
	f := schemaCmd.Flags()
	f.StringVar(&schemaFlags.rootName, "root-name", "", "Root type name (default: derived from the sample file name)")
	f.StringVar(&schemaFlags.selectExpr, "select", "", "jq expression applied to the sample before inference")
	f.StringVar(&schemaFlags.refsPath, "refs", "", "Path to a reference schema document (JSON or YAML)")
	f.StringVarP(&schemaFlags.outPath, "out", "o", "", "Output file (default: stdout)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	inf, err := newInference(schemaFlags.refsPath)
	if err != nil {
		return err
	}
	res, _, err := inf.run(args[0], schemaFlags.selectExpr, schemaFlags.rootName)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(schema.Export(res), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}
	data = append(data, '\n')

	if schemaFlags.outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}
	return writeOutput(schemaFlags.outPath, string(data))
}
