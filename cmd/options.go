package cmd

import (
	"fmt"

	"github.com/kamusis/catalog-cli/internal/filter"
	"github.com/spf13/cobra"
)

var flagOptionsFilters []string

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List every filter option with its live count",
	Long: `List the filter fields and their options. Options selected with --filter
are checked; every count is taken over the records the current selection
leaves visible. The last column is the token to pass to --filter.`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().StringArrayVarP(&flagOptionsFilters, "filter", "f", nil, "Filter token field:value (repeatable, comma separated)")
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	c, _, err := loadCatalog()
	if err != nil {
		return err
	}
	state, _ := parseFilterFlags(flagOptionsFilters)
	res := filter.NewEvaluator(logger).Evaluate(c, state, "")

	out := cmd.OutOrStdout()
	printOptionCounts(out, state, res)
	fmt.Fprintf(out, "\n%d of %d records visible\n", len(res.Records), res.Total)
	return nil
}
