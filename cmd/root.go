package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kamusis/catalog-cli/internal/catalog"
	"github.com/kamusis/catalog-cli/internal/config"
	"github.com/kamusis/catalog-cli/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagCatalogPath string
	flagVerbose     bool

	// logger is built in PersistentPreRunE; nop until then so helpers are safe in tests.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "catalog",
	Short:        "Catalog CLI — browse and filter a small record catalog",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Catalog shows a fixed catalog of records as a table and narrows the rows
with field:value filters (public:true, regions:hs, tags:math, ...).

Values within one field are alternatives; different fields must all match.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(flagVerbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalogPath, "catalog", "", "Catalog YAML file (default: configured catalog_path or the built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print debug diagnostics")
}

// Execute is called by main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadCatalog resolves the configuration and loads the catalog it points at.
// Validation problems are logged, not fatal; 'catalog doctor' lists them.
func loadCatalog() (*catalog.Catalog, *config.Config, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load config: %w", err)
	}
	path := cfg.CatalogPath
	if flagCatalogPath != "" {
		if path, err = config.ExpandPath(flagCatalogPath); err != nil {
			return nil, nil, err
		}
	}

	var c *catalog.Catalog
	if path == "" {
		c, err = catalog.Default()
	} else {
		c, err = catalog.Load(path)
	}
	if err != nil {
		return nil, nil, err
	}
	if err := catalog.Validate(c); err != nil {
		logger.Warn("catalog has problems, run 'catalog doctor' for details", zap.Error(err))
	}
	logger.Debug("catalog loaded",
		zap.String("path", path),
		zap.Int("records", len(c.Records)),
		zap.Int("fields", len(c.Fields)))
	return c, cfg, nil
}
