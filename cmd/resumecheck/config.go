package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long:  "Loads the config file, .env and environment overrides and prints the effective settings.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	timeout := "none"
	if cfg.API.Timeout > 0 {
		timeout = cfg.API.Timeout.String()
	}

	fmt.Printf("%-16s %s\n", "Setting", "Value")
	fmt.Println(strings.Repeat("─", 47))
	fmt.Printf("%-16s %s\n", "api.base_url", cfg.API.BaseURL)
	fmt.Printf("%-16s %s\n", "api.timeout", timeout)
	fmt.Printf("%-16s %t\n", "ui.alt_screen", cfg.UI.AltScreen)
	return nil
}
