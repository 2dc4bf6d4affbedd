package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amishk599/resumecheck/internal/form"
	"github.com/amishk599/resumecheck/internal/model"
	"github.com/amishk599/resumecheck/internal/report"
	"github.com/amishk599/resumecheck/internal/resume"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Upload a resume once and print the report",
	Long:  "Non-interactive submission: validates the file, sends one request, prints the report or the error, exits.",
	Args:  cobra.NoArgs,
	RunE:  runSubmit,
}

var reportWidth int

func init() {
	addAnalyzeFlags(submitCmd)
	submitCmd.Flags().IntVar(&reportWidth, "width", 72, "report width in columns")
	_ = submitCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f := form.New()
	f.SetJobDescription(jd)
	if !submitOnce(ctx, f, filePath, newClient(cfg, logger), cmd.OutOrStdout()) {
		os.Exit(1)
	}
	return nil
}

// submitOnce drives the form through pick and submit, writes the outcome
// to out, and reports whether a report was produced.
func submitOnce(ctx context.Context, f *form.Form, path string, uploader model.ResumeUploader, out io.Writer) bool {
	file, err := resume.Inspect(path)
	if err != nil {
		f.RejectFile(fmt.Sprintf("Cannot read %s: %s", file.Name, resume.Reason(err)))
	} else {
		f.SelectFile(file)
	}
	if f.File() == nil {
		fmt.Fprintf(out, "✖ %s\n", f.ErrorMessage())
		return false
	}

	f.Submit(ctx, uploader)
	if f.State() != form.Succeeded {
		fmt.Fprintf(out, "✖ %s\n", f.ErrorMessage())
		return false
	}
	fmt.Fprint(out, report.Render(*f.Result(), reportWidth))
	return true
}
