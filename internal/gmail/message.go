package gmail

import (
	"encoding/base64"
	"fmt"

	gmail "google.golang.org/api/gmail/v1"

	"github.com/inboxsense/inboxsense/internal/sanitize"
)

// HeaderValue returns the value of the named header, or "" if absent.
func HeaderValue(m *gmail.Message, header string) string {
	if m == nil || m.Payload == nil {
		return ""
	}
	for _, h := range m.Payload.Headers {
		if h.Name == header {
			return h.Value
		}
	}
	return ""
}

// Summary is the lightweight view of a message shown when rating emails.
// The body is sanitized before it lands here; raw links and addresses in
// the content never leave this package.
type Summary struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	From     string `json:"from"`
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Snippet  string `json:"snippet"`
	Body     string `json:"body,omitempty"`
}

// Summarize builds a Summary from a full message. The From header is
// parsed down to the bare address and the snippet is sanitized.
func Summarize(msg *gmail.Message) Summary {
	sender := sanitize.ExtractSenderInfo(HeaderValue(msg, "From"))
	return Summary{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		From:     sender.Email,
		Subject:  HeaderValue(msg, "Subject"),
		Date:     HeaderValue(msg, "Date"),
		Snippet:  sanitize.Sanitize(msg.Snippet),
	}
}

// MessageBody extracts the message body as sanitized plain text. A
// text/plain part is preferred; HTML bodies are converted first.
func MessageBody(msg *gmail.Message) string {
	if body := rawBody(msg, "text/plain"); body != "" {
		return sanitize.Sanitize(body)
	}
	if body := rawBody(msg, "text/html"); body != "" {
		return sanitize.Sanitize(sanitize.HTMLToText(body))
	}
	return ""
}

// GetMessageBody fetches a message and extracts its body in the requested
// format ("text" or "html"), undecorated and undecoded by sanitization.
func (c *Client) GetMessageBody(messageID string, format string) (string, error) {
	if format == "" {
		format = "text"
	}

	var targetMimeType string
	switch format {
	case "text":
		targetMimeType = "text/plain"
	case "html":
		targetMimeType = "text/html"
	default:
		return "", fmt.Errorf("invalid format %s, must be 'text' or 'html'", format)
	}

	msg, err := c.GetMessage(messageID)
	if err != nil {
		return "", err
	}

	body := rawBody(msg, targetMimeType)
	if body == "" {
		return "", fmt.Errorf("no %s body found in message", format)
	}
	return body, nil
}

func rawBody(msg *gmail.Message, targetMimeType string) string {
	if msg == nil || msg.Payload == nil {
		return ""
	}

	var encoded string
	if msg.Payload.MimeType == targetMimeType && msg.Payload.Body != nil && msg.Payload.Body.Data != "" {
		encoded = msg.Payload.Body.Data
	} else {
		walkParts(msg.Payload, func(part *gmail.MessagePart) {
			if encoded == "" && part.MimeType == targetMimeType && part.Body != nil && part.Body.Data != "" {
				encoded = part.Body.Data
			}
		})
	}
	if encoded == "" {
		return ""
	}

	// Gmail API uses RFC 4648 base64url encoding
	decoded, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		decoded, err = base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}

// walkParts recursively walks through message parts
func walkParts(part *gmail.MessagePart, fn func(*gmail.MessagePart)) {
	if part == nil {
		return
	}
	fn(part)
	for _, subpart := range part.Parts {
		walkParts(subpart, fn)
	}
}
