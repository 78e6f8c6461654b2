package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/config"
	"github.com/inboxsense/inboxsense/internal/profile"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect and edit the interest profile",
		Long: `Manage the interest profile that guides email analysis: core
interests, active projects and trusted senders. Every mutation takes a
timestamped backup of the profile file first.`,
	}

	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileAddCmd())
	cmd.AddCommand(newProfileRemoveCmd())
	cmd.AddCommand(newProfileBatchAddCmd())
	cmd.AddCommand(newProfileConsolidateCmd())
	cmd.AddCommand(newProfileResetCmd())
	return cmd
}

func openProfile() (*profile.Store, error) {
	profiles, err := profile.Open(config.ProfilePath(), slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profiles, nil
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := openProfile()
			if err != nil {
				return err
			}
			return printJSON(profiles.Current())
		},
	}
}

func newProfileAddCmd() *cobra.Command {
	var (
		interests []string
		projects  []string
		senders   []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add interests, projects or trusted senders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(interests) == 0 && len(projects) == 0 && len(senders) == 0 {
				return fmt.Errorf("nothing to add: pass --interests, --projects or --senders")
			}

			return instrumentedMutation(cmd.Context(), "add", func() error {
				profiles, err := openProfile()
				if err != nil {
					return err
				}

				if len(interests) > 0 {
					added, err := profiles.AddInterests(interests)
					if err != nil {
						return err
					}
					reportAdded("interests", added)
				}
				if len(projects) > 0 {
					added, err := profiles.AddProjects(projects)
					if err != nil {
						return err
					}
					reportAdded("projects", added)
				}
				if len(senders) > 0 {
					added, invalid, err := profiles.AddSenders(senders)
					if err != nil {
						return err
					}
					reportAdded("trusted senders", added)
					if len(invalid) > 0 {
						fmt.Printf("Skipped invalid senders: %s\n", strings.Join(invalid, ", "))
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&interests, "interests", nil, "Interests to add")
	cmd.Flags().StringSliceVar(&projects, "projects", nil, "Projects to add")
	cmd.Flags().StringSliceVar(&senders, "senders", nil, "Trusted sender addresses or domains to add")
	return cmd
}

func newProfileRemoveCmd() *cobra.Command {
	var (
		interests []string
		projects  []string
		senders   []string
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove interests, projects or trusted senders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(interests) == 0 && len(projects) == 0 && len(senders) == 0 {
				return fmt.Errorf("nothing to remove: pass --interests, --projects or --senders")
			}

			return instrumentedMutation(cmd.Context(), "remove", func() error {
				profiles, err := openProfile()
				if err != nil {
					return err
				}

				if len(interests) > 0 {
					removed, err := profiles.RemoveInterests(interests)
					if err != nil {
						return err
					}
					reportRemoved("interests", removed)
				}
				if len(projects) > 0 {
					removed, err := profiles.RemoveProjects(projects)
					if err != nil {
						return err
					}
					reportRemoved("projects", removed)
				}
				if len(senders) > 0 {
					removed, err := profiles.RemoveSenders(senders)
					if err != nil {
						return err
					}
					reportRemoved("trusted senders", removed)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&interests, "interests", nil, "Interests to remove")
	cmd.Flags().StringSliceVar(&projects, "projects", nil, "Projects to remove")
	cmd.Flags().StringSliceVar(&senders, "senders", nil, "Trusted senders to remove")
	return cmd
}

func newProfileBatchAddCmd() *cobra.Command {
	var noBackup bool

	cmd := &cobra.Command{
		Use:   "batch-add [interest]...",
		Short: "Add multiple interests with similarity checking",
		Long: `Add several interests at once. Case-insensitive duplicates are
skipped and candidates similar to an existing interest (substring
matches and known abbreviation pairs like ml / machine learning) are
held back for manual review instead of being added.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return instrumentedMutation(cmd.Context(), "batch_add", func() error {
				profiles, err := openProfile()
				if err != nil {
					return err
				}
				result, err := profiles.BatchAddInterests(args, !noBackup)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}

	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the profile backup before writing")
	return cmd
}

func newProfileConsolidateCmd() *cobra.Command {
	var into string

	cmd := &cobra.Command{
		Use:   "consolidate [interest]...",
		Short: "Replace several interests with one consolidated entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if into == "" {
				return fmt.Errorf("--into is required")
			}
			return instrumentedMutation(cmd.Context(), "consolidate", func() error {
				profiles, err := openProfile()
				if err != nil {
					return err
				}
				result, err := profiles.ConsolidateInterests(args, into)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}

	cmd.Flags().StringVar(&into, "into", "", "The consolidated interest that replaces the removed ones")
	return cmd
}

func newProfileResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the profile to its defaults",
		Long: `Replace the profile with the default template. A backup of the
current profile is taken first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			return instrumentedMutation(cmd.Context(), "reset", func() error {
				profiles, err := openProfile()
				if err != nil {
					return err
				}
				if err := profiles.Reset(); err != nil {
					return err
				}
				fmt.Println("Profile reset to defaults (backup saved next to the profile file)")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

func reportAdded(kind string, added []string) {
	if len(added) == 0 {
		fmt.Printf("No new %s added\n", kind)
		return
	}
	fmt.Printf("Added %s: %s\n", kind, strings.Join(added, ", "))
}

func reportRemoved(kind string, removed []string) {
	if len(removed) == 0 {
		fmt.Printf("No %s removed\n", kind)
		return
	}
	fmt.Printf("Removed %s: %s\n", kind, strings.Join(removed, ", "))
}
