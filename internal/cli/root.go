// Package cli implements the allergenctl command tree.
package cli

import (
	"fmt"

	"github.com/allergenlens/backend/config"
	"github.com/allergenlens/backend/internal/app"
	"github.com/allergenlens/backend/internal/logging"
	"github.com/spf13/cobra"
)

// options are the global flags shared by every subcommand
type options struct {
	cfgFile string
	verbose bool
	asJSON  bool
}

// NewRootCommand builds the allergenctl command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "allergenctl",
		Short: "AllergenLens - allergen lookup for Korean packaged food",
		Long: `allergenctl looks packaged food up by barcode or product report number
across the local product store, the HACCP certification registry and the
Food QR e-label registry, and lists the allergens found in its ingredients.

Registry credentials and the product store are configured the same way as
the server: config.yaml or ALLERGENLENS_* environment variables.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logging.SetupWriter(cmd.ErrOrStderr(), "production", level)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(
		newVersionCommand(),
		newDetectCommand(opts),
		newLookupCommand(opts),
		newProductsCommand(opts),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "allergenctl v%s\n", app.Version)
		},
	}
}

// openApp loads configuration and assembles the services
func openApp(opts *options) (*app.App, error) {
	cfg, err := config.LoadFile(opts.cfgFile)
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}
