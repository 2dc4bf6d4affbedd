package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/resumecheck/internal/form"
	"github.com/amishk599/resumecheck/internal/tui"
)

var (
	filePath       string
	jobDescription string
	jobFile        string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Open the interactive upload form (TUI)",
	Long:  "Pick a PDF resume, optionally paste a job description, and view the analysis report.",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

func init() {
	addAnalyzeFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "resume PDF to preselect")
	cmd.Flags().StringVarP(&jobDescription, "job-description", "j", "", "job description text")
	cmd.Flags().StringVar(&jobFile, "job-file", "", "read the job description from a file")
	cmd.MarkFlagsMutuallyExclusive("job-description", "job-file")
}

// resolveJobDescription returns the --job-description text or the contents
// of --job-file.
func resolveJobDescription() (string, error) {
	if jobFile == "" {
		return jobDescription, nil
	}
	data, err := os.ReadFile(jobFile)
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	return string(data), nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	jd, err := resolveJobDescription()
	if err != nil {
		logger.Error("failed to read job description", "error", err)
		os.Exit(1)
	}

	client := newClient(cfg, discardLogger())
	opts := tui.Options{
		File:           filePath,
		JobDescription: jd,
		AltScreen:      cfg.UI.AltScreen,
	}
	if err := tui.Run(form.New(), client, opts); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
