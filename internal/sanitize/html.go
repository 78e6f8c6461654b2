package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
)

// HTMLToText converts an HTML email body to plain text: scripts, styles
// and head content are dropped, text nodes become newline-separated lines,
// and blank lines are squeezed out. A body that fails to parse falls back
// to stripping tags with a regex.
func HTMLToText(htmlContent string) string {
	if htmlContent == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		text := tagPattern.ReplaceAllString(htmlContent, "")
		return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	}

	var b strings.Builder
	collectText(doc, &b)

	lines := strings.Split(b.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}

	text := strings.Join(kept, "\n")
	return blankLinesPattern.ReplaceAllString(text, "\n\n")
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head, atom.Title, atom.Meta:
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
