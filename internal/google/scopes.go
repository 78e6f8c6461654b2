package google

import gmail "google.golang.org/api/gmail/v1"

// DefaultOAuthScopes are the Google OAuth scopes the application requests.
// Gmail modify covers reading messages and archiving; nothing broader is
// asked for.
var DefaultOAuthScopes = []string{
	gmail.GmailModifyScope,
}
