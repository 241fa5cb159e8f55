package render

// Node is one node of the display tree. Implementations are pure data;
// consumers type-switch over the concrete types.
type Node interface {
	displayNode()
}

// Style describes how a scalar should be presented.
type Style int

const (
	// StylePlain is an unadorned value.
	StylePlain Style = iota

	// StyleMuted is a de-emphasized placeholder such as "None".
	StyleMuted

	// StyleMutedItalic is a de-emphasized italic placeholder such as "N/A".
	StyleMutedItalic

	// StyleEmphasis is an emphasized value, used for numbers.
	StyleEmphasis

	// StylePreformatted preserves line breaks, used for multiline strings.
	StylePreformatted

	// StyleBadgeSuccess is a positive badge, used for true booleans.
	StyleBadgeSuccess

	// StyleBadgeError is a negative badge, used for false booleans.
	StyleBadgeError
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleMuted:
		return "muted"
	case StyleMutedItalic:
		return "muted-italic"
	case StyleEmphasis:
		return "emphasis"
	case StylePreformatted:
		return "preformatted"
	case StyleBadgeSuccess:
		return "badge-success"
	case StyleBadgeError:
		return "badge-error"
	default:
		return "plain"
	}
}

// Span is a run of inline text, optionally bold.
type Span struct {
	Text string
	Bold bool
}

// Line is the inline content of a single displayed line.
type Line []Span

// Plain returns the line's text with inline styling flattened away.
func (l Line) Plain() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Text
	}
	n := 0
	for _, span := range l {
		n += len(span.Text)
	}
	buf := make([]byte, 0, n)
	for _, span := range l {
		buf = append(buf, span.Text...)
	}
	return string(buf)
}

// Scalar is a single displayed value.
type Scalar struct {
	Text  string
	Style Style
}

// Bullets is a bullet list, produced both from scalar-only JSON arrays and
// from bullet runs in prose.
type Bullets struct {
	Items []Line
}

// NumberedItem is one entry of a numbered list. The ordinal is taken from
// the source text, not renumbered.
type NumberedItem struct {
	Ordinal string
	Text    Line
}

// Numbered is a numbered list from a prose run.
type Numbered struct {
	Items []NumberedItem
}

// List is a sequence of independently rendered nodes with visual separation
// between items: mixed or object-element arrays, and prose block sequences.
type List struct {
	Items []Node
}

// Entry is one labeled entry of a Section.
type Entry struct {
	// Label is the humanized form of the source key.
	Label string

	// Value is the rendered entry value.
	Value Node

	// Complex marks entries whose value is itself an object or non-empty
	// array. At depth 0 complex entries render as separated blocks with an
	// emphasized section label; deeper down the flag only affects
	// indentation.
	Complex bool
}

// Section is a rendered JSON object: its entries in source key order.
type Section struct {
	Depth   int
	Entries []Entry
}

// Heading is a prose heading, level 1 to 3.
type Heading struct {
	Level int
	Text  Line
}

// Paragraph is a standalone prose line.
type Paragraph struct {
	Text Line
}

// Spacer is the vertical spacing produced by one blank prose line.
// Consecutive blank lines are not collapsed; each yields its own Spacer.
type Spacer struct{}

func (Scalar) displayNode()    {}
func (Bullets) displayNode()   {}
func (Numbered) displayNode()  {}
func (List) displayNode()      {}
func (Section) displayNode()   {}
func (Heading) displayNode()   {}
func (Paragraph) displayNode() {}
func (Spacer) displayNode()    {}
