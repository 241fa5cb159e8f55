package render

import (
	"strings"
)

// Text renders a display tree as indented plain text. It is a debug and CLI
// surface, deterministic for a given tree; real display shells consume the
// nodes directly.
func Text(n Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeNode(b *strings.Builder, n Node, indent int) {
	switch n := n.(type) {
	case Scalar:
		writeIndented(b, n.Text, indent)

	case Bullets:
		for _, item := range n.Items {
			writeIndented(b, "- "+item.Plain(), indent)
		}

	case Numbered:
		for _, item := range n.Items {
			writeIndented(b, item.Ordinal+". "+item.Text.Plain(), indent)
		}

	case List:
		for i, item := range n.Items {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeNode(b, item, indent)
		}

	case Section:
		for i, entry := range n.Entries {
			if entry.Complex {
				if n.Depth == 0 && i > 0 {
					b.WriteByte('\n')
				}
				writeIndented(b, entry.Label+":", indent)
				writeNode(b, entry.Value, indent+1)
				continue
			}
			if scalar, ok := entry.Value.(Scalar); ok && !strings.ContainsRune(scalar.Text, '\n') {
				writeIndented(b, entry.Label+": "+scalar.Text, indent)
				continue
			}
			writeIndented(b, entry.Label+":", indent)
			writeNode(b, entry.Value, indent+1)
		}

	case Heading:
		writeIndented(b, strings.Repeat("#", n.Level)+" "+n.Text.Plain(), indent)

	case Paragraph:
		writeIndented(b, n.Text.Plain(), indent)

	case Spacer:
		b.WriteByte('\n')
	}
}

func writeIndented(b *strings.Builder, text string, indent int) {
	prefix := strings.Repeat("  ", indent)
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
