package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/client"
	"github.com/stocktake-dev/stocktake/internal/cli/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [server-url]",
		Short: "Create a stocktake.json configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	serverURL := client.DefaultBaseURL
	if len(args) > 0 {
		serverURL = args[0]
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, config.ConfigFileName)

	var cfg *config.Config
	isNewConfig := false

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load existing config: %w", err)
		}
		fmt.Println("Found existing stocktake.json")
	} else {
		cfg = &config.Config{Servers: []config.Server{}}
		isNewConfig = true
	}

	// Check if server already exists
	for _, server := range cfg.Servers {
		if server.URL == serverURL {
			fmt.Printf("Server %s already exists in stocktake.json\n", serverURL)
			return nil
		}
	}

	alias := "production"
	if len(cfg.Servers) > 0 {
		alias = fmt.Sprintf("server-%d", len(cfg.Servers)+1)
	}

	cfg.Servers = append(cfg.Servers, config.Server{
		URL:   serverURL,
		Alias: alias,
	})

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	if isNewConfig {
		fmt.Printf("✓ Created ./stocktake.json with server %s (%s)\n", serverURL, alias)
	} else {
		fmt.Printf("✓ Added server %s (%s) to ./stocktake.json\n", serverURL, alias)
	}

	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run 'stocktake login' to authenticate")
	fmt.Println("  2. Run 'stocktake products ls' to browse the catalog")

	return nil
}
