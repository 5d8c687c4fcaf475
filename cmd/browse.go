package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/kamusis/catalog-cli/internal/browse"
	"github.com/kamusis/catalog-cli/internal/filter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var flagBrowseFilters []string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open the interactive catalog page: filter checkboxes with live counts on the
left, the selection tokens and the record table on the right.

Keys: ↑/↓ move, space toggle, c clear field, C clear all,
/ edit the selection as comma separated tokens, tab focus the table, q quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringArrayVarP(&flagBrowseFilters, "filter", "f", nil, "Initial filter token field:value (repeatable, comma separated)")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	c, cfg, err := loadCatalog()
	if err != nil {
		return err
	}
	state, _ := parseFilterFlags(flagBrowseFilters)

	// Diagnostics are held back while the page owns the terminal.
	var diag bytes.Buffer
	held := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(&diag),
		zapcore.WarnLevel,
	))

	m := browse.New(c, filter.NewEvaluator(held), state, cfg.PageSize)
	final, err := browse.Run(cmd.Context(), m)
	if diag.Len() > 0 {
		fmt.Fprint(os.Stderr, diag.String())
	}
	if err != nil {
		return err
	}

	tokens := final.State().Tokens()
	if len(tokens) == 0 {
		printInfo("", "no filters selected")
		return nil
	}
	printInfo("", "selection: "+strings.Join(tokens, ", "))
	printInfo("", "reuse with: catalog list -f "+shellQuote(strings.Join(tokens, ",")))
	return nil
}
