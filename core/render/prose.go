package render

import (
	"regexp"
	"strings"
)

var (
	headingPattern  = regexp.MustCompile(`^(#+)\s+(.*)$`)
	bulletPattern   = regexp.MustCompile(`^[-*•]\s+(.*)$`)
	numberedPattern = regexp.MustCompile(`^(\d+)[.)]\s+(.*)$`)
)

// Prose renders free text through the minimal markdown subset: headings
// (#, ##, and ### or more, which all collapse to level 3), runs of bullet
// lines, runs of numbered lines, blank-line spacing and fallback paragraphs.
// Inline **bold** spans are split out of every line's text.
//
// The scan is a single forward pass; a run of list lines ends at the first
// line that does not match, and blank lines each produce their own Spacer
// with no collapsing.
func Prose(text string) []Node {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var blocks []Node
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		switch {
		case line == "":
			blocks = append(blocks, Spacer{})
			i++

		case headingPattern.MatchString(line):
			m := headingPattern.FindStringSubmatch(line)
			level := len(m[1])
			if level > 3 {
				level = 3
			}
			blocks = append(blocks, Heading{Level: level, Text: Inline(m[2])})
			i++

		case bulletPattern.MatchString(line):
			var items []Line
			for i < len(lines) {
				m := bulletPattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
				if m == nil {
					break
				}
				items = append(items, Inline(m[1]))
				i++
			}
			blocks = append(blocks, Bullets{Items: items})

		case numberedPattern.MatchString(line):
			var items []NumberedItem
			for i < len(lines) {
				m := numberedPattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
				if m == nil {
					break
				}
				items = append(items, NumberedItem{Ordinal: m[1], Text: Inline(m[2])})
				i++
			}
			blocks = append(blocks, Numbered{Items: items})

		default:
			blocks = append(blocks, Paragraph{Text: Inline(line)})
			i++
		}
	}
	return blocks
}

// Inline splits a line of text into spans at **bold** delimiters. An
// unmatched ** is left in the text as-is.
func Inline(text string) Line {
	var spans Line
	rest := text
	for {
		open := strings.Index(rest, "**")
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open+2:], "**")
		if closing < 0 {
			break
		}
		if open > 0 {
			spans = append(spans, Span{Text: rest[:open]})
		}
		spans = append(spans, Span{Text: rest[open+2 : open+2+closing], Bold: true})
		rest = rest[open+2+closing+2:]
	}
	if rest != "" || len(spans) == 0 {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
