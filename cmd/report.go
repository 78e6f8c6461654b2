package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/feedback"
	"github.com/inboxsense/inboxsense/internal/learning"
	"github.com/inboxsense/inboxsense/internal/profile"
)

func newReportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the learning analysis as a markdown report",
		Long: `Render the full learning analysis (accuracy, trend, strong and weak
areas, suggestions, top senders) as a markdown report.

The report is written into the report directory by default; use
--output to pick a file, or "--output -" to print to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			store := feedback.Open(config.FeedbackLogPath(), logger)

			eng := learning.SuggestionEngine{}
			if profiles, err := profile.Open(config.ProfilePath(), logger); err == nil {
				eng.Interests = profiles.Current().CoreInterests
				eng.TrustedSenders = profiles.Current().TrustedSenders
			}

			now := time.Now()
			report := learning.Report(store.Entries(), store.Stats(), &eng, now)

			if output == "-" {
				fmt.Print(report)
				return nil
			}

			path := output
			if path == "" {
				name := fmt.Sprintf("learning_report_%s.md", now.Format("2006-01-02"))
				path = filepath.Join(config.ReportDir(), name)
			}
			if dir := filepath.Dir(path); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create report directory: %w", err)
				}
			}
			if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `Output file (default: learning_report_<date>.md in the report directory, "-" for stdout)`)
	return cmd
}
