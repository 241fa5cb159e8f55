package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/promptforge/outputview/core/extract"
)

// Value recursively renders a JSON value into a display node. Dispatch is
// type-driven:
//
//   - nil → "N/A" placeholder
//   - bool → "Yes"/"No" badge
//   - number → emphasized text, formatted as the source wrote it
//   - string → plain, or preformatted when it contains a newline
//   - empty array → "None" placeholder
//   - array of strings/numbers → bullet list
//   - any other array → list of recursively rendered items
//   - object → section of labeled entries in source key order
//
// Anything else (a value that did not come from a JSON decode) falls back to
// its fmt.Sprint form rather than failing: rendering cannot error.
//
// Depth is a presentation hint carried into Section nodes; it is not
// bounded. JSON values are acyclic by construction, so deep recursion
// terminates.
func Value(v any, depth int) Node {
	switch v := v.(type) {
	case nil:
		return Scalar{Text: "N/A", Style: StyleMutedItalic}

	case bool:
		if v {
			return Scalar{Text: "Yes", Style: StyleBadgeSuccess}
		}
		return Scalar{Text: "No", Style: StyleBadgeError}

	case json.Number:
		return Scalar{Text: v.String(), Style: StyleEmphasis}

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Scalar{Text: fmt.Sprint(v), Style: StyleEmphasis}

	case string:
		if strings.ContainsRune(v, '\n') {
			return Scalar{Text: v, Style: StylePreformatted}
		}
		return Scalar{Text: v, Style: StylePlain}

	case []any:
		return renderArray(v, depth)

	case *extract.Object:
		return renderObject(v, depth)

	case map[string]any:
		// Hand-built values; key order is unknown so sort for stability.
		obj := extract.NewObject()
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			obj.Set(key, v[key])
		}
		return renderObject(obj, depth)

	default:
		return Scalar{Text: fmt.Sprint(v), Style: StylePlain}
	}
}

func renderArray(items []any, depth int) Node {
	if len(items) == 0 {
		return Scalar{Text: "None", Style: StyleMuted}
	}

	if allScalarItems(items) {
		lines := make([]Line, len(items))
		for i, item := range items {
			lines[i] = Line{{Text: scalarText(item)}}
		}
		return Bullets{Items: lines}
	}

	nodes := make([]Node, len(items))
	for i, item := range items {
		nodes[i] = Value(item, depth+1)
	}
	return List{Items: nodes}
}

// allScalarItems reports whether every element is a string or number, the
// condition for the bullet-list specialization.
func allScalarItems(items []any) bool {
	for _, item := range items {
		switch item.(type) {
		case string, json.Number,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
		default:
			return false
		}
	}
	return true
}

func scalarText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func renderObject(obj *extract.Object, depth int) Node {
	keys := obj.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		val, _ := obj.Get(key)
		entries = append(entries, Entry{
			Label:   Label(key),
			Value:   Value(val, depth+1),
			Complex: isComplex(val),
		})
	}
	return Section{Depth: depth, Entries: entries}
}

// isComplex reports whether a value warrants its own block: an object, or an
// array with at least one element. Empty arrays render inline as "None".
func isComplex(v any) bool {
	switch v := v.(type) {
	case *extract.Object, map[string]any:
		return true
	case []any:
		return len(v) > 0
	default:
		return false
	}
}

// Label converts a raw object key into a human-readable label: underscores
// and hyphens become spaces, a space is inserted where a capital follows a
// lowercase letter, and each word's first letter is capitalized.
//
//	"overall_risk_score" → "Overall Risk Score"
//	"camelCaseKey"       → "Camel Case Key"
func Label(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	prev := rune(0)
	startOfWord := true
	for _, r := range key {
		if r == '_' || r == '-' || r == ' ' {
			if !startOfWord {
				b.WriteRune(' ')
				startOfWord = true
			}
			prev = 0
			continue
		}
		// Word splits compare source runes: a capital following a
		// lowercase letter in the key, before any capitalization of
		// word-initial letters.
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteRune(' ')
			startOfWord = true
		}
		prev = r
		if startOfWord {
			r = unicode.ToUpper(r)
			startOfWord = false
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
