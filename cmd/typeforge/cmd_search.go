package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typeforge/typeforge/internal/search"
)

var searchFlags struct {
	rootName   string
	selectExpr string
	refsPath   string
}

var searchCmd = &cobra.Command{
	Use:   "search <sample> <query>...",
	Short: "Search an inferred catalog by type and field names",
	Long: `Infer a type catalog from the sample, then search it by free text.
Query tokens are ANDed; camelCase names match their split words, so
"full name" finds a type with a fullName field.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchFlags.rootName, "root-name", "", "Root type name (default: derived from the sample file name)")
	f.StringVar(&searchFlags.selectExpr, "select", "", "jq expression applied to the sample before inference")
	f.StringVar(&searchFlags.refsPath, "refs", "", "Path to a reference schema document (JSON or YAML)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	inf, err := newInference(searchFlags.refsPath)
	if err != nil {
		return err
	}
	res, _, err := inf.run(args[0], searchFlags.selectExpr, searchFlags.rootName)
	if err != nil {
		return err
	}

	query := strings.Join(args[1:], " ")
	hits := search.Build(res.Types).Query(query)
	if len(hits) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No types match %q (%d types in catalog)\n", query, len(res.Types))
		return nil
	}

	for _, h := range hits {
		fmt.Fprintln(cmd.OutOrStdout(), h.Describe())
	}
	return nil
}
