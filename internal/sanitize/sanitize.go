package sanitize

import (
	"regexp"
	"strings"
)

// Markers substituted for stripped content. Downstream checks treat them
// as already-safe text.
const (
	URLMarker   = "[URL REMOVED]"
	EmailMarker = "[EMAIL REMOVED]"
)

var (
	protocolURLPattern = regexp.MustCompile(`(?i)http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
	wwwURLPattern      = regexp.MustCompile(`(?i)\bwww\.(?:[a-zA-Z0-9]|[$-_@.&+])+\.[a-zA-Z]{2,}\b`)
	emailPattern       = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// Bare domains with common TLDs. RE2 has no lookbehind, so a leading
	// capture group excludes domains preceded by "@" (those are the tail of
	// an address already replaced above) and is kept in the replacement.
	bareDomainPattern = regexp.MustCompile(`(?i)(^|[^@\w])((?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+(?:com|org|net|edu|gov|mil|co|io|ai|app|dev|xyz|info|biz|me|us|uk|au|ca|de|fr|jp|cn|in|br|ru|nl|se|no|dk|fi|be|ch|at|nz|sg|hk|tw|kr|my|th|vn|ph|id|za|mx|ar|cl|pe|ve|co\.uk|co\.nz|com\.au|co\.za|co\.in|co\.id))\b`)

	angleBracketPattern = regexp.MustCompile(`[<>]`)
	orphanedAtPattern   = regexp.MustCompile(`@\[URL REMOVED\]`)
)

// Sanitize strips all URLs and email addresses from email text before it
// is stored or sent to the analysis model. No whitelisting: everything
// that looks like a link or address is replaced with a marker.
//
// The replacement order matters: protocol URLs first, then www URLs, then
// email addresses, then bare domains, so that earlier passes never leave
// fragments the later passes would half-match.
func Sanitize(emailText string) string {
	if emailText == "" {
		return ""
	}

	emailText = protocolURLPattern.ReplaceAllString(emailText, URLMarker)
	emailText = wwwURLPattern.ReplaceAllString(emailText, URLMarker)
	emailText = emailPattern.ReplaceAllString(emailText, EmailMarker)
	emailText = bareDomainPattern.ReplaceAllString(emailText, "${1}"+URLMarker)

	// Angle brackets show up in pasted header lines.
	emailText = angleBracketPattern.ReplaceAllString(emailText, "")

	// A bare local part left next to a replaced domain becomes an email
	// marker instead of "name@[URL REMOVED]".
	emailText = orphanedAtPattern.ReplaceAllString(emailText, EmailMarker)

	return strings.TrimSpace(emailText)
}

var urlChecks = []*regexp.Regexp{
	regexp.MustCompile(`(?i)http[s]?://`),
	regexp.MustCompile(`(?i)www\.`),
	regexp.MustCompile(`(?i)\b[a-z0-9-]+\.(?:com|org|net|edu|gov|io|ai|app)\b`),
}

var emailCheck = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[A-Z|a-z]{2,}`)

// IsContentSafe reports whether text contains no URLs or email addresses.
// The replacement markers themselves are considered safe.
func IsContentSafe(text string) bool {
	if text == "" {
		return true
	}

	for _, pattern := range urlChecks {
		if pattern.MatchString(text) {
			return false
		}
	}

	if emailCheck.MatchString(text) && !strings.Contains(text, EmailMarker) {
		return false
	}
	return true
}

// Summary reports what a sanitization pass removed.
type Summary struct {
	URLsRemoved       int  `json:"urls_removed"`
	EmailsRemoved     int  `json:"emails_removed"`
	CharactersReduced int  `json:"characters_reduced"`
	IsSafe            bool `json:"is_safe"`
}

// Summarize counts the markers in sanitized output and the size delta
// against the original.
func Summarize(original, sanitized string) Summary {
	return Summary{
		URLsRemoved:       strings.Count(sanitized, URLMarker),
		EmailsRemoved:     strings.Count(sanitized, EmailMarker),
		CharactersReduced: len(original) - len(sanitized),
		IsSafe:            IsContentSafe(sanitized),
	}
}

var senderPattern = regexp.MustCompile(`^"?([^"<]+)"?\s*<([^>]+)>$`)

// SenderInfo is the parsed From header.
type SenderInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExtractSenderInfo parses a From header of the form `"Name" <email>`,
// `Name <email>` or a bare address.
func ExtractSenderInfo(fromHeader string) SenderInfo {
	if fromHeader == "" {
		return SenderInfo{Name: "Unknown", Email: "unknown@unknown.com"}
	}

	if m := senderPattern.FindStringSubmatch(strings.TrimSpace(fromHeader)); m != nil {
		return SenderInfo{
			Name:  strings.TrimSpace(m[1]),
			Email: strings.TrimSpace(m[2]),
		}
	}

	email := strings.TrimSpace(fromHeader)
	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}
	return SenderInfo{Name: name, Email: email}
}
