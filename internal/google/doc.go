// Package google provides OAuth2 authentication and token management for
// the Gmail API.
//
// Tokens are cached per named account under the user cache directory as
// google-<account>.token, so work and personal mailboxes can be fetched
// side by side.
package google
