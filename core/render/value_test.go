package render

import (
	"encoding/json"
	"testing"

	"github.com/promptforge/outputview/core/extract"
)

// TestValue_Scalars covers the scalar dispatch rules.
func TestValue_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Scalar
	}{
		{"nil", nil, Scalar{Text: "N/A", Style: StyleMutedItalic}},
		{"true", true, Scalar{Text: "Yes", Style: StyleBadgeSuccess}},
		{"false", false, Scalar{Text: "No", Style: StyleBadgeError}},
		{"number", json.Number("6.5"), Scalar{Text: "6.5", Style: StyleEmphasis}},
		{"go int", 12, Scalar{Text: "12", Style: StyleEmphasis}},
		{"string", "hello", Scalar{Text: "hello", Style: StylePlain}},
		{"multiline string", "line one\nline two", Scalar{Text: "line one\nline two", Style: StylePreformatted}},
		{"empty array", []any{}, Scalar{Text: "None", Style: StyleMuted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Value(tt.input, 0).(Scalar)
			if !ok {
				t.Fatalf("expected Scalar, got %T", Value(tt.input, 0))
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestValue_UnknownTypeFallsBack tests that a value outside the JSON type
// set renders as its string form rather than failing.
func TestValue_UnknownTypeFallsBack(t *testing.T) {
	type odd struct{ A int }
	got, ok := Value(odd{A: 1}, 0).(Scalar)
	if !ok {
		t.Fatal("expected Scalar fallback")
	}
	if got.Style != StylePlain || got.Text == "" {
		t.Errorf("unexpected fallback scalar %+v", got)
	}
}

// TestValue_BulletListSpecialization tests that an all-scalar array becomes
// one bullet list with the items in order.
func TestValue_BulletListSpecialization(t *testing.T) {
	got, ok := Value([]any{"a", "b", "c"}, 0).(Bullets)
	if !ok {
		t.Fatal("expected Bullets")
	}
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got.Items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got.Items[i].Plain() != want {
			t.Errorf("item %d: expected %q, got %q", i, want, got.Items[i].Plain())
		}
	}
}

// TestValue_MixedArray tests that an array with non-scalar elements renders
// each element as its own node.
func TestValue_MixedArray(t *testing.T) {
	inner := extract.NewObject()
	inner.Set("k", "v")

	got, ok := Value([]any{"text", inner}, 0).(List)
	if !ok {
		t.Fatal("expected List")
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	section, ok := got.Items[1].(Section)
	if !ok {
		t.Fatalf("expected object element to render as Section, got %T", got.Items[1])
	}
	if section.Depth != 1 {
		t.Errorf("expected element section at depth 1, got %d", section.Depth)
	}
}

// TestValue_BooleanArrayIsNotBulletList tests that the bullet-list
// specialization requires every element to be a string or number.
func TestValue_BooleanArrayIsNotBulletList(t *testing.T) {
	if _, ok := Value([]any{"a", true}, 0).(List); !ok {
		t.Errorf("expected array with boolean to render as List")
	}
}

// TestValue_Section tests object rendering: entry order, labels and the
// complex flag.
func TestValue_Section(t *testing.T) {
	obj := extract.NewObject()
	obj.Set("overall_risk_score", json.Number("8"))
	obj.Set("findings", []any{"one", "two"})
	obj.Set("empty_list", []any{})

	got, ok := Value(obj, 0).(Section)
	if !ok {
		t.Fatal("expected Section")
	}
	if got.Depth != 0 {
		t.Errorf("expected depth 0, got %d", got.Depth)
	}
	if len(got.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got.Entries))
	}

	if got.Entries[0].Label != "Overall Risk Score" {
		t.Errorf("unexpected label %q", got.Entries[0].Label)
	}
	if got.Entries[0].Complex {
		t.Error("scalar entry must not be complex")
	}
	if !got.Entries[1].Complex {
		t.Error("non-empty array entry must be complex")
	}
	if got.Entries[2].Complex {
		t.Error("empty array entry must not be complex")
	}
	if scalar, ok := got.Entries[2].Value.(Scalar); !ok || scalar.Text != "None" {
		t.Errorf("expected empty array entry to render as None, got %v", got.Entries[2].Value)
	}
}

// TestValue_NestedSectionDepth tests depth propagation through nesting.
func TestValue_NestedSectionDepth(t *testing.T) {
	inner := extract.NewObject()
	inner.Set("leaf", "v")
	outer := extract.NewObject()
	outer.Set("child", inner)

	section := Value(outer, 0).(Section)
	child, ok := section.Entries[0].Value.(Section)
	if !ok {
		t.Fatalf("expected nested Section, got %T", section.Entries[0].Value)
	}
	if child.Depth != 1 {
		t.Errorf("expected nested depth 1, got %d", child.Depth)
	}
}

// TestValue_MapRendersSorted tests that hand-built maps render with sorted
// keys since no source order exists.
func TestValue_MapRendersSorted(t *testing.T) {
	section, ok := Value(map[string]any{"b": 1, "a": 2}, 0).(Section)
	if !ok {
		t.Fatal("expected Section")
	}
	if section.Entries[0].Label != "A" || section.Entries[1].Label != "B" {
		t.Errorf("expected sorted labels, got %q, %q", section.Entries[0].Label, section.Entries[1].Label)
	}
}

// TestLabel covers the key-humanization rules.
func TestLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"overall_risk_score", "Overall Risk Score"},
		{"camelCaseKey", "Camel Case Key"},
		{"kebab-case-key", "Kebab Case Key"},
		{"xValue", "X Value"},
		{"aB", "A B"},
		{"iOS_config", "I OS Config"},
		{"simple", "Simple"},
		{"ALLCAPS", "ALLCAPS"},
		{"trailing_", "Trailing"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Label(tt.key); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
