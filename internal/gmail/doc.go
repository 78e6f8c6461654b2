// Package gmail provides a thin client over the Gmail API for fetching
// inbox messages and archiving them once rated.
//
// Bodies and snippets are sanitized on the way out: callers outside this
// package only ever see text with URLs and email addresses replaced by
// markers.
package gmail
