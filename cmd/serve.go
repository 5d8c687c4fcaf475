package cmd

import (
	"fmt"

	"github.com/kamusis/catalog-cli/internal/filter"
	"github.com/kamusis/catalog-cli/internal/web"
	"github.com/spf13/cobra"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog page to a browser",
	Long: `Serve the filterable catalog page over HTTP until interrupted.

The page keeps its whole selection in the URL (?f=field:value&f=...), so any
filtered view can be bookmarked or shared.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default: listen_addr from config, 127.0.0.1:8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	c, cfg, err := loadCatalog()
	if err != nil {
		return err
	}
	addr := cfg.ListenAddr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}

	srv, err := web.NewServer(c, filter.NewEvaluator(logger), logger)
	if err != nil {
		return err
	}
	printOK("", fmt.Sprintf("serving %d records on http://%s (Ctrl+C to stop)", len(c.Records), addr))
	if err := web.ListenAndServe(cmd.Context(), addr, srv.Handler(), logger); err != nil {
		return err
	}
	printInfo("", "server stopped")
	return nil
}
