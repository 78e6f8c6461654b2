package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inboxsense/inboxsense/internal/google"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate a Google account for Gmail access",
		Long: `Authenticate with Google so inboxsense can read and archive your
Gmail messages. Run "auth url" to get the consent URL, visit it, then
run "auth save --account <name> <code>" with the authorization code.

GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set (a .env file in
the working directory is loaded automatically).`,
	}

	cmd.AddCommand(newAuthURLCmd())
	cmd.AddCommand(newAuthSaveCmd())
	cmd.AddCommand(newAuthStatusCmd())
	return cmd
}

func newAuthURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the Google OAuth consent URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := google.GetAuthURL()
			if err != nil {
				return err
			}
			fmt.Println(url)
			return nil
		},
	}
}

func newAuthSaveCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "save [auth-code]",
		Short: "Exchange an authorization code and cache the token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := google.SaveTokenForAccount(cmd.Context(), account, args[0]); err != nil {
				return err
			}
			fmt.Printf("Token saved for account %q\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to save the token under")
	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether a cached token exists for an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasTokenForAccount(account) {
				fmt.Printf("Account %q is authenticated\n", account)
				return nil
			}
			fmt.Print(google.GetAuthenticationErrorMessage(account))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to check")
	return cmd
}
