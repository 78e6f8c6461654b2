package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeProtocolURLs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "https link",
			in:   "See https://example.com/docs for details",
			want: "See [URL REMOVED] for details",
		},
		{
			name: "http link",
			in:   "visit http://example.org now",
			want: "visit [URL REMOVED] now",
		},
		{
			name: "www link without protocol",
			in:   "go to www.example.com today",
			want: "go to [URL REMOVED] today",
		},
		{
			name: "multiple links",
			in:   "https://a.com and https://b.org",
			want: "[URL REMOVED] and [URL REMOVED]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeEmailAddresses(t *testing.T) {
	got := Sanitize("Contact alice@example.com or bob.smith+tag@corp.co.uk")
	assert.NotContains(t, got, "alice@example.com")
	assert.NotContains(t, got, "bob.smith")
	assert.Contains(t, got, "[EMAIL REMOVED]")
}

func TestSanitizeBareDomains(t *testing.T) {
	got := Sanitize("Check example.com for updates")
	assert.Equal(t, "Check [URL REMOVED] for updates", got)

	// A domain at the start of the text is also caught
	got = Sanitize("example.io is down")
	assert.Equal(t, "[URL REMOVED] is down", got)
}

func TestSanitizeAngleBrackets(t *testing.T) {
	got := Sanitize("From: Alice <alice@example.com>")
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")
	assert.Contains(t, got, "[EMAIL REMOVED]")
}

func TestSanitizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "", Sanitize("   "))
}

func TestSanitizeTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("  hello  "))
}

func TestSanitizePlainTextUntouched(t *testing.T) {
	in := "The deployment finished without errors."
	assert.Equal(t, in, Sanitize(in))
}

func TestIsContentSafe(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"plain text", "nothing suspicious here", true},
		{"protocol url", "see https://example.com", false},
		{"www url", "see www.example.com", false},
		{"bare domain", "see example.com", false},
		{"email address", "mail alice@example.com", false},
		{"markers are safe", "see [URL REMOVED] or [EMAIL REMOVED]", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContentSafe(tt.in))
		})
	}
}

func TestSanitizedOutputIsAlwaysSafe(t *testing.T) {
	inputs := []string{
		"https://example.com plus alice@example.com plus example.org",
		"newsletter from www.news.example.com <noreply@news.example.com>",
		"bare domain example.dev mid sentence",
	}
	for _, in := range inputs {
		got := Sanitize(in)
		assert.True(t, IsContentSafe(got), "Sanitize(%q) = %q is not safe", in, got)
	}
}

func TestSummarize(t *testing.T) {
	original := "see https://example.com or mail alice@example.com"
	sanitized := Sanitize(original)

	summary := Summarize(original, sanitized)
	assert.Equal(t, 1, summary.URLsRemoved)
	assert.Equal(t, 1, summary.EmailsRemoved)
	assert.Equal(t, len(original)-len(sanitized), summary.CharactersReduced)
	assert.True(t, summary.IsSafe)
}

func TestExtractSenderInfo(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   SenderInfo
	}{
		{
			name:   "quoted name with address",
			header: `"Alice Smith" <alice@example.com>`,
			want:   SenderInfo{Name: "Alice Smith", Email: "alice@example.com"},
		},
		{
			name:   "unquoted name with address",
			header: "Bob Jones <bob@example.com>",
			want:   SenderInfo{Name: "Bob Jones", Email: "bob@example.com"},
		},
		{
			name:   "bare address",
			header: "carol@example.com",
			want:   SenderInfo{Name: "carol", Email: "carol@example.com"},
		},
		{
			name:   "empty header",
			header: "",
			want:   SenderInfo{Name: "Unknown", Email: "unknown@unknown.com"},
		},
		{
			name:   "no at sign",
			header: "mailer-daemon",
			want:   SenderInfo{Name: "mailer-daemon", Email: "mailer-daemon"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSenderInfo(tt.header))
		})
	}
}

func TestSanitizeLongBody(t *testing.T) {
	body := strings.Repeat("regular text without links. ", 50) + "footer: https://tracker.example.com/pixel"
	got := Sanitize(body)
	assert.True(t, strings.HasSuffix(got, "footer: [URL REMOVED]"))
}
