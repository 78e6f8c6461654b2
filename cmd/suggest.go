package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/feedback"
	"github.com/inboxsense/inboxsense/internal/learning"
	"github.com/inboxsense/inboxsense/internal/profile"
)

func newSuggestCmd() *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate profile update suggestions from feedback",
		Long: `Generate suggestions for interests to add or remove and senders to
trust, based on high-value feedback entries. Suggestions are gated
against the current profile so nothing already present is proposed.

With --apply the suggested additions are written to the profile after
a backup is taken. Similar-sounding interests are held back rather
than added; review them manually.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			store := feedback.Open(config.FeedbackLogPath(), logger)

			profiles, err := profile.Open(config.ProfilePath(), logger)
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			current := profiles.Current()

			eng := learning.SuggestionEngine{
				Interests:      current.CoreInterests,
				TrustedSenders: current.TrustedSenders,
			}

			entries := store.Entries()
			suggestions, ok := eng.Suggest(entries)
			if !ok {
				fmt.Printf("Not enough feedback for suggestions: have %d entries, need %d.\n",
					len(entries), learning.MinEntriesForSuggestions)
				return nil
			}

			if !apply {
				return printJSON(suggestions)
			}
			return instrumentedMutation(cmd.Context(), "apply_suggestions", func() error {
				return applySuggestions(profiles, suggestions)
			})
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Apply suggested additions to the profile (backup taken first)")
	return cmd
}

func applySuggestions(profiles *profile.Store, suggestions *learning.Suggestions) error {
	before := profiles.Snapshot()

	interests := suggestionNames(suggestions.AddInterests)
	if len(interests) > 0 {
		result, err := profiles.BatchAddInterests(interests, true)
		if err != nil {
			return fmt.Errorf("failed to add interests: %w", err)
		}
		if len(result.Added) > 0 {
			fmt.Printf("Added interests: %s\n", strings.Join(result.Added, ", "))
		}
		if len(result.Duplicates) > 0 {
			fmt.Printf("Already present: %s\n", strings.Join(result.Duplicates, ", "))
		}
		for candidate, similar := range result.Similar {
			fmt.Printf("Held back %q (similar to: %s)\n", candidate, strings.Join(similar, ", "))
		}
	}

	senders := suggestionNames(suggestions.AddSenders)
	if len(senders) > 0 {
		added, invalid, err := profiles.AddSenders(senders)
		if err != nil {
			return fmt.Errorf("failed to add senders: %w", err)
		}
		if len(added) > 0 {
			fmt.Printf("Added trusted senders: %s\n", strings.Join(added, ", "))
		}
		if len(invalid) > 0 {
			fmt.Printf("Skipped invalid senders: %s\n", strings.Join(invalid, ", "))
		}
	}

	if len(suggestions.RemoveInterests) > 0 {
		fmt.Println("Suggested removals (not applied automatically):")
		for _, s := range suggestions.RemoveInterests {
			fmt.Printf("  - %s (%s): %s\n", s.Name, s.Confidence, s.Reason)
		}
	}

	comparison := profile.Compare(before, profiles.Snapshot())
	fmt.Printf("Profile changes: %s\n", comparison.Summary)
	return nil
}

func suggestionNames(suggestions []learning.Suggestion) []string {
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name)
	}
	return names
}
