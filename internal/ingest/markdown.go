package ingest

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// FlattenMarkdown renders markdown-formatted review text to plain text so
// formatting noise never reaches the scorer. Link syntax keeps only the
// link text.
func FlattenMarkdown(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")

	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(rendered), " ")

	return strings.Join(strings.Fields(plain), " ")
}
