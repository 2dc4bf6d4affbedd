package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/resumecheck/internal/config"
	"github.com/amishk599/resumecheck/internal/upload"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "resumecheck",
	Short: "Resume analyzer client",
	Long:  "resumecheck uploads a PDF resume and an optional job description to the analysis service and shows the match report.",
	// With no subcommand, open the interactive form.
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: RESUMECHECK_CONFIG env var or ./resumecheck.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	addAnalyzeFlags(rootCmd)
}

func loadConfig(path string) (*config.Config, error) {
	return config.Resolve(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// discardLogger is used while a TUI owns the terminal; any log output
// corrupts the display.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(cfg *config.Config, logger *slog.Logger) *upload.Client {
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	return upload.NewClient(cfg.API.BaseURL, httpClient, logger)
}
