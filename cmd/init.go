package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kamusis/catalog-cli/internal/catalog"
	"github.com/kamusis/catalog-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagInitExport bool
	flagInitForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.catalog with a default configuration",
	Long: `Create ~/.catalog/config.yaml and the ~/.catalog/.env template.

With --export the built-in catalog is also written to ~/.catalog/catalog.yaml
and config.yaml is pointed at it, so records and filter options can be edited.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitExport, "export", false, "Export the built-in catalog to ~/.catalog/catalog.yaml")
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing exported catalog")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 1. Create ~/.catalog/ ─────────────────────────────────────────────────
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("Catalog directory ready: %s", dir))

	// ── 2. Write config.yaml if missing ───────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 3. dotenv template ────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}

	// ── 4. Export the built-in catalog ────────────────────────────────────────
	if flagInitExport {
		if err := exportCatalog(filepath.Join(dir, "catalog.yaml"), flagInitForce); err != nil {
			return err
		}
	}

	fmt.Println("\n✓  catalog init complete. Run 'catalog doctor' to verify your setup.")
	return nil
}

// exportCatalog writes the built-in catalog to path and points config.yaml at it.
func exportCatalog(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		printSkip("", fmt.Sprintf("Catalog already exported: %s (use --force to overwrite)", path))
	} else {
		if err := os.WriteFile(path, catalog.DefaultYAML(), 0o644); err != nil {
			return fmt.Errorf("cannot write catalog %s: %w", path, err)
		}
		printOK("", fmt.Sprintf("Catalog exported: %s", path))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.CatalogPath == path {
		return nil
	}
	cfg.CatalogPath = path
	if err := config.Save(cfg); err != nil {
		return err
	}
	printOK("", "config.yaml now uses the exported catalog")
	return nil
}
