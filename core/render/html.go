package render

import (
	"regexp"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlTagPattern matches opening tags of common block-level HTML elements.
// A stray angle bracket in prose is not enough to trigger conversion.
var htmlTagPattern = regexp.MustCompile(`(?i)<(html|body|article|section|div|p|h[1-6]|ul|ol|li|table|tr|td|th|br|strong|em)\b`)

// normalizeHTML converts HTML-looking input to markdown so the prose
// renderer sees headings and lists instead of literal tags. Input that does
// not look like HTML, or that fails conversion, is returned unchanged.
func normalizeHTML(text string) string {
	if !htmlTagPattern.MatchString(text) {
		return text
	}
	markdown, err := htmltomarkdown.ConvertString(text)
	if err != nil {
		return text
	}
	return markdown
}
