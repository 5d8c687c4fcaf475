package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/kamusis/catalog-cli/internal/catalog"
	"github.com/kamusis/catalog-cli/internal/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration and the catalog",
	Long: `Check that the configuration loads and that the catalog is consistent:
unique record names, filter fields that map to record attributes, and
region / tag values that the filter options actually offer.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("catalog doctor")
	fmt.Println()

	// ── Check 1: config.yaml ──────────────────────────────────────────────────
	fmt.Println("[ config.yaml ]")
	cfgPath, err := config.ConfigPath()
	if err != nil {
		failD("cannot determine home directory: %v", err)
	} else if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printSkip("", fmt.Sprintf("%s not found, using defaults (run 'catalog init' to create it)", cfgPath))
	} else if _, err := config.Load(); err != nil {
		failD("cannot parse config: %v", err)
	} else {
		printOK("", fmt.Sprintf("valid YAML: %s", cfgPath))
	}
	fmt.Println()

	// ── Check 2: catalog loads ────────────────────────────────────────────────
	fmt.Println("[ catalog ]")
	c, cfg, err := loadCatalog()
	if err != nil {
		failD("%v", err)
		fmt.Println()
		return doctorResult(allOK)
	}
	source := "built-in"
	if flagCatalogPath != "" {
		source = flagCatalogPath
	} else if cfg.CatalogPath != "" {
		source = cfg.CatalogPath
	}
	printOK("", fmt.Sprintf("%s catalog: %d record(s), %d filter field(s)", source, len(c.Records), len(c.Fields)))
	fmt.Println()

	// ── Check 3: consistency ──────────────────────────────────────────────────
	fmt.Println("[ consistency ]")
	if err := catalog.Validate(c); err != nil {
		for _, e := range unwrapJoined(err) {
			failD("%v", e)
		}
	} else {
		printOK("", "record names are unique and every value is offered as a filter option")
	}
	for _, d := range c.Fields {
		if len(d.Options) == 0 {
			printWarn(string(d.Key), "filter field has no options")
		}
	}
	fmt.Println()

	return doctorResult(allOK)
}

func doctorResult(allOK bool) error {
	if !allOK {
		return errors.New("doctor found problems")
	}
	printOK("", "all checks passed")
	return nil
}

// unwrapJoined splits an errors.Join result back into its parts.
func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
