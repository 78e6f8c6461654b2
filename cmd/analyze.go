package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/feedback"
	"github.com/inboxsense/inboxsense/internal/learning"
)

// analysisOutput bundles the full analysis results for JSON rendering.
type analysisOutput struct {
	Patterns *learning.PatternAnalysis `json:"patterns"`
	Content  *learning.ContentPatterns `json:"content_patterns,omitempty"`
	Weights  *learning.Weights         `json:"weights,omitempty"`
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Run the full pattern analysis over the feedback log",
		Long: `Analyze the feedback log for per-level accuracy, sender patterns,
content patterns from high-value emails, the accuracy trend over time
and the calculated learning weights.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := feedback.Open(config.FeedbackLogPath(), slog.Default())
			entries := store.Entries()

			analysis, ok := learning.AnalyzePatterns(entries)
			if !ok {
				fmt.Printf("Not enough feedback for pattern analysis: have %d entries, need %d.\n",
					len(entries), learning.MinEntriesForPatterns)
				return nil
			}

			out := analysisOutput{Patterns: analysis}
			if content, ok := learning.AnalyzeContent(entries); ok {
				out.Content = content
			}
			if weights, ok := learning.CalculateWeights(entries); ok {
				out.Weights = weights
			}
			return printJSON(out)
		},
	}
}
