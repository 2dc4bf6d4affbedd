package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/resumecheck/internal/model"
	"github.com/amishk599/resumecheck/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <resume-id>",
	Short: "Print the stored analysis for a previously uploaded resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&reportWidth, "width", 72, "report width in columns")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid resume id %q", args[0])
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !showOnce(ctx, id, newClient(cfg, logger), cmd.OutOrStdout()) {
		os.Exit(1)
	}
	return nil
}

// showOnce fetches the analysis for id and writes the report or the error
// message to out.
func showOnce(ctx context.Context, id int64, fetcher model.AnalysisFetcher, out io.Writer) bool {
	result, err := fetcher.FetchAnalysis(ctx, id)
	if err != nil {
		fmt.Fprintf(out, "✖ %s\n", model.UserMessage(err))
		return false
	}
	fmt.Fprint(out, report.Render(*result, reportWidth))
	return true
}
