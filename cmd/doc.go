// Package cmd implements the command-line interface for inboxsense.
//
// This package provides the following commands:
//   - record: Record feedback on an email interest prediction
//   - insights: Show a quick accuracy and sender summary
//   - analyze: Run the full pattern analysis over the feedback log
//   - suggest: Generate profile update suggestions, optionally applying them
//   - report: Export the learning analysis as a markdown report
//   - profile: Inspect and edit the interest profile
//   - auth: Authenticate a Google account for Gmail access
//   - fetch: Fetch sanitized messages from Gmail
//   - archive: Archive Gmail messages
//   - serve: Start the read-only learning API server
//   - version: Display version information
//
// The insights command is the default command when no subcommand is specified.
package cmd
