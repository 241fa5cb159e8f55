package extract

import (
	"regexp"
	"strings"
)

var (
	fenceMarkerPattern   = regexp.MustCompile("```(?:json)?\\s*\\n?")
	nullLiteralPattern   = regexp.MustCompile(`(?i)(:\s*)NULL\b`)
	trueLiteralPattern   = regexp.MustCompile(`(?i)(:\s*)TRUE\b`)
	falseLiteralPattern  = regexp.MustCompile(`(?i)(:\s*)FALSE\b`)
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// Sanitize cleans common model-output artifacts from a JSON candidate:
// stray code-fence markers, uppercase NULL/TRUE/FALSE literals after a
// colon, and trailing commas before a closing brace or bracket.
//
// Sanitize operates on raw text, not a parsed document, so a string value
// that itself contains one of these patterns will be rewritten too. That is
// an accepted limitation; Sanitize only runs on candidates that already
// failed a strict decode.
func Sanitize(s string) string {
	cleaned := fenceMarkerPattern.ReplaceAllString(s, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimRight(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = nullLiteralPattern.ReplaceAllString(cleaned, "${1}null")
	cleaned = trueLiteralPattern.ReplaceAllString(cleaned, "${1}true")
	cleaned = falseLiteralPattern.ReplaceAllString(cleaned, "${1}false")
	cleaned = trailingCommaPattern.ReplaceAllString(cleaned, "$1")
	return cleaned
}
