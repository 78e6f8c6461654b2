package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	in := `<html><body><p>Hello</p><p>World</p></body></html>`
	got := HTMLToText(in)
	assert.Equal(t, "Hello\nWorld", got)
}

func TestHTMLToTextDropsScriptAndStyle(t *testing.T) {
	in := `<html><head><title>Ignore</title><style>p { color: red }</style></head>` +
		`<body><script>alert("x")</script><p>Visible</p></body></html>`

	got := HTMLToText(in)
	assert.Equal(t, "Visible", got)
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "color")
	assert.NotContains(t, got, "Ignore")
}

func TestHTMLToTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", HTMLToText(""))
}

func TestHTMLToTextPlainText(t *testing.T) {
	// The parser accepts bare text; it comes back as a single line
	assert.Equal(t, "just words", HTMLToText("just words"))
}

func TestHTMLToTextSqueezesBlankLines(t *testing.T) {
	in := "<div>first</div><br><br><br><div>second</div>"
	got := HTMLToText(in)
	assert.NotContains(t, got, "\n\n\n")
	assert.True(t, strings.HasPrefix(got, "first"))
	assert.True(t, strings.HasSuffix(got, "second"))
}

func TestHTMLToTextNestedMarkup(t *testing.T) {
	in := `<table><tr><td>cell one</td><td>cell two</td></tr></table>`
	got := HTMLToText(in)
	assert.Contains(t, got, "cell one")
	assert.Contains(t, got, "cell two")
}
