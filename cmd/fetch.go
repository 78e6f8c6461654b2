package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/gmail"
)

func newFetchCmd() *cobra.Command {
	var (
		account    string
		query      string
		maxResults int64
		withBody   bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch sanitized messages from Gmail",
		Long: `List messages from Gmail and print sanitized summaries as JSON.
URLs and email addresses in snippets and bodies are replaced with
placeholder markers before anything is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if account == "" {
				account = config.GmailAccount()
			}

			metrics, flush := cliInstrumentation(cmd.Context())
			defer flush()

			client, err := gmail.NewClientForAccount(cmd.Context(), account)
			if err != nil {
				return fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
			}

			start := time.Now()
			messages, err := client.ListMessages(query, maxResults)
			metrics.RecordGmailOperation(cmd.Context(), "list_messages", statusOf(err), time.Since(start))
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			summaries := make([]gmail.Summary, 0, len(messages))
			for _, m := range messages {
				start = time.Now()
				full, err := client.GetMessage(m.Id)
				metrics.RecordGmailOperation(cmd.Context(), "get_message", statusOf(err), time.Since(start))
				if err != nil {
					return fmt.Errorf("failed to fetch message %s: %w", m.Id, err)
				}
				summary := gmail.Summarize(full)
				if withBody {
					summary.Body = gmail.MessageBody(full)
				}
				summaries = append(summaries, summary)
			}
			return printJSON(summaries)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Google account name to use (default from config)")
	cmd.Flags().StringVar(&query, "query", "in:inbox", "Gmail search query")
	cmd.Flags().Int64Var(&maxResults, "max", 10, "Maximum number of messages to fetch")
	cmd.Flags().BoolVar(&withBody, "body", false, "Include the sanitized message body")
	return cmd
}

func newArchiveCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "archive [message-id]...",
		Short: "Archive Gmail messages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if account == "" {
				account = config.GmailAccount()
			}

			metrics, flush := cliInstrumentation(cmd.Context())
			defer flush()

			client, err := gmail.NewClientForAccount(cmd.Context(), account)
			if err != nil {
				return fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
			}

			for _, id := range args {
				start := time.Now()
				err := client.ArchiveMessage(id)
				metrics.RecordGmailOperation(cmd.Context(), "archive_message", statusOf(err), time.Since(start))
				if err != nil {
					return fmt.Errorf("failed to archive message %s: %w", id, err)
				}
				fmt.Printf("Archived %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Google account name to use (default from config)")
	return cmd
}
