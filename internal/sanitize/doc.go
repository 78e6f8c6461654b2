// Package sanitize strips URLs and email addresses from email content
// before it leaves the local machine.
//
// Everything that looks like a link or an address is replaced with a
// marker, with no whitelisting. The feedback log and the analysis prompt
// only ever see sanitized text; IsContentSafe is the final gate.
package sanitize
