package cmd

import (
	"strings"

	"github.com/kamusis/catalog-cli/internal/filter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagListFilters []string
	flagListQuery   string
	flagListCounts  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the records matching the selected filters",
	Example: `  catalog list -f public:true
  catalog list -f tags:math -f regions:hs
  catalog list -f tags:math,tags:science --query bio --counts`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringArrayVarP(&flagListFilters, "filter", "f", nil, "Filter token field:value (repeatable, comma separated)")
	listCmd.Flags().StringVarP(&flagListQuery, "query", "q", "", "Only keep records whose name contains every word")
	listCmd.Flags().BoolVar(&flagListCounts, "counts", false, "Also print every filter option with its count")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	c, _, err := loadCatalog()
	if err != nil {
		return err
	}
	state, malformed := parseFilterFlags(flagListFilters)
	if len(malformed) > 0 {
		logger.Debug("ignored malformed filter tokens", zap.Strings("tokens", malformed))
	}

	res := filter.NewEvaluator(logger).Evaluate(c, state, flagListQuery)
	out := cmd.OutOrStdout()
	printRecords(out, c, res)
	if flagListCounts {
		printOptionCounts(out, state, res)
	}
	if len(malformed) > 0 {
		printWarn("", "ignored tokens without field:value form: "+strings.Join(malformed, ", "))
	}
	return nil
}
