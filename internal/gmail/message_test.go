package gmail

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	gmail "google.golang.org/api/gmail/v1"
)

func messageWithHeaders(headers map[string]string) *gmail.Message {
	payload := &gmail.MessagePart{}
	for name, value := range headers {
		payload.Headers = append(payload.Headers, &gmail.MessagePartHeader{
			Name:  name,
			Value: value,
		})
	}
	return &gmail.Message{Id: "msg-1", ThreadId: "thread-1", Payload: payload}
}

func TestHeaderValue(t *testing.T) {
	msg := messageWithHeaders(map[string]string{
		"From":    "Jane Doe <jane@example.com>",
		"Subject": "Weekly update",
	})

	assert.Equal(t, "Weekly update", HeaderValue(msg, "Subject"))
	assert.Equal(t, "", HeaderValue(msg, "Date"))
	assert.Equal(t, "", HeaderValue(nil, "Subject"))
}

func TestSummarize(t *testing.T) {
	msg := messageWithHeaders(map[string]string{
		"From":    "Jane Doe <jane@example.com>",
		"Subject": "Weekly update",
		"Date":    "Mon, 13 Jul 2026 10:00:00 +0000",
	})
	msg.Snippet = "Check out https://example.com/offer now"

	summary := Summarize(msg)

	assert.Equal(t, "msg-1", summary.ID)
	assert.Equal(t, "thread-1", summary.ThreadID)
	assert.Equal(t, "jane@example.com", summary.From)
	assert.Equal(t, "Weekly update", summary.Subject)
	assert.NotContains(t, summary.Snippet, "example.com")
	assert.Contains(t, summary.Snippet, "[URL REMOVED]")
}

func TestMessageBodyPrefersPlainText(t *testing.T) {
	plain := base64.URLEncoding.EncodeToString([]byte("plain body"))
	html := base64.URLEncoding.EncodeToString([]byte("<p>html body</p>"))

	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "multipart/alternative",
			Parts: []*gmail.MessagePart{
				{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: html}},
				{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: plain}},
			},
		},
	}

	assert.Equal(t, "plain body", MessageBody(msg))
}

func TestMessageBodyFallsBackToHTML(t *testing.T) {
	html := base64.URLEncoding.EncodeToString([]byte("<p>Hello <b>there</b></p>"))

	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "text/html",
			Body:     &gmail.MessagePartBody{Data: html},
		},
	}

	body := MessageBody(msg)
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "there")
	assert.NotContains(t, body, "<p>")
}

func TestMessageBodyEmpty(t *testing.T) {
	assert.Equal(t, "", MessageBody(nil))
	assert.Equal(t, "", MessageBody(&gmail.Message{}))
}

func TestRawBodyStandardBase64Fallback(t *testing.T) {
	// Standard base64 with padding that URLEncoding may reject when it
	// contains +/ characters.
	data := base64.StdEncoding.EncodeToString([]byte{0xfb, 0xff, 0xfe, 'a', 'b'})
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "text/plain",
			Body:     &gmail.MessagePartBody{Data: data},
		},
	}

	body := rawBody(msg, "text/plain")
	assert.NotEmpty(t, body)
}
