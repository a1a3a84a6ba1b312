package scrape

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// GetText returns the concatenated text content of a node subtree.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// Text extracts the cleaned text of a selection: non-printable runes
// removed, surrounding whitespace trimmed, inner whitespace collapsed.
// Table cells on the build page carry heavy indentation from the markup,
// so raw text is unusable for matching or display.
func Text(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer)
	}

	text := removeNonPrintable(buffer.String())
	text = strings.TrimSpace(text)
	return innerWhitespace.ReplaceAllString(text, " ")
}

func removeNonPrintable(s string) string {
	var b strings.Builder
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}
