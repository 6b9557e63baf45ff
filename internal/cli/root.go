package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/commands"
	"github.com/stocktake-dev/stocktake/internal/logger"
)

var version = "dev" // Will be set during build

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stocktake",
	Short: "Stocktake - inventory management from the terminal",
	Long: `Stocktake CLI - browse the catalog, record stock movements and run
inventory reports against a stocktake server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Credentials for CI may live in a local .env file
		_ = godotenv.Load(".env")

		level := "warn"
		if verbose {
			level = "debug"
		}
		if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
			level = envLevel
		}
		logger.Init(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stocktake version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewProductsCmd())
	rootCmd.AddCommand(commands.NewWarehousesCmd())
	rootCmd.AddCommand(commands.NewInventoryCmd())
	rootCmd.AddCommand(commands.NewMovementsCmd())
	rootCmd.AddCommand(commands.NewReportCmd())
	rootCmd.AddCommand(commands.NewImportCmd())
	rootCmd.AddCommand(commands.NewStockTakeCmd())
	rootCmd.AddCommand(commands.NewThemeCmd())
	rootCmd.AddCommand(commands.NewSelectServerCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
