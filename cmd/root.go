package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/logging"
)

// rootCmd represents the base command for the inboxsense application
var rootCmd = &cobra.Command{
	Use:   "inboxsense",
	Short: "Learns your email interests from prediction feedback",
	Long: `inboxsense tracks how well AI interest predictions for your email match
your actual judgment, learns sender and content patterns from that
feedback, and suggests updates to your interest profile.

It can run as:
  - A standalone CLI tool (default)
  - A read-only HTTP API server (serve)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		slog.SetDefault(logging.New(os.Stderr, config.LogLevel(), config.LogFormat()))
		return nil
	},
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "inboxsense version %s\n" .Version}}`)

	// If no subcommand is provided, show the insights summary by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "insights")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newInsightsCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newArchiveCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
