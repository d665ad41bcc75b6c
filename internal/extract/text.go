// Package extract recovers display-ready text from the loosely-structured
// payloads of the upstream catalog: HTML-bearing strings, localized
// {lang, content} lists, and the untyped fullData blob.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// PreferredLanguage is the language code preferred when picking a localized
// variant
const PreferredLanguage = "swe"

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// LocalizedText is one {lang, content} pair of a localized field
type LocalizedText struct {
	Lang    string `json:"lang"`
	Content string `json:"content"`
}

// PlainText strips markup from a string that may contain HTML and collapses
// runs of whitespace. Strings without markup come back trimmed as-is.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// Unparseable markup: fall back to replacing tags with spaces.
		return collapseWhitespace(tagPattern.ReplaceAllString(s, " "))
	}

	var b strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for _, node := range doc.Find("body").Nodes {
		visit(node)
	}

	return collapseWhitespace(b.String())
}

// Localized picks the content of the first item matching the preferred
// language, falling back to the first item, then to fallback.
func Localized(items []LocalizedText, preferredLang, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	for _, item := range items {
		if item.Lang == preferredLang {
			return item.Content
		}
	}
	return items[0].Content
}

// LocalizedPlain resolves a localized list with the preferred language and
// strips markup from the result
func LocalizedPlain(items []LocalizedText) string {
	raw := Localized(items, PreferredLanguage, "")
	if raw == "" {
		return ""
	}
	return PlainText(raw)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
