package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/feedback"
)

func newInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show a quick accuracy and sender summary",
		Long: `Summarize the feedback log: overall accuracy, the recent trend, the
most frequent senders and simple recommendations. This is the quick
view; run "analyze" for the full pattern analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := feedback.Open(config.FeedbackLogPath(), slog.Default())
			return printJSON(store.Insights())
		},
	}
}
