package extract

import (
	"strings"
	"testing"
)

type review struct {
	ProductName string   `json:"product_name"`
	Rating      int      `json:"rating"`
	Pros        []string `json:"pros"`
}

// TestAs_ValidJSON tests the typed parse on a clean JSON document.
func TestAs_ValidJSON(t *testing.T) {
	got, err := As[review](`{"product_name": "Widget", "rating": 4, "pros": ["cheap"]}`)
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	if got.ProductName != "Widget" || got.Rating != 4 {
		t.Errorf("unexpected result %+v", got)
	}
}

// TestAs_FencedJSON tests that the recognized span is decoded, so fenced
// responses work without the caller stripping markdown.
func TestAs_FencedJSON(t *testing.T) {
	raw := "Here you go:\n```json\n{\"product_name\": \"Widget\", \"rating\": 5}\n```"
	got, err := As[review](raw)
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	if got.Rating != 5 {
		t.Errorf("expected rating 5, got %d", got.Rating)
	}
}

// TestAs_RepairedJSON tests the jsonrepair retry on malformed output.
func TestAs_RepairedJSON(t *testing.T) {
	got, err := As[review](`{product_name: 'Widget', rating: 3}`)
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	if got.ProductName != "Widget" || got.Rating != 3 {
		t.Errorf("unexpected result %+v", got)
	}
}

// TestAs_Primitives tests the direct conversions for primitive targets.
// Unlike Extract, bare scalars are legitimate here.
func TestAs_Primitives(t *testing.T) {
	if got, err := As[string]("plain text"); err != nil || got != "plain text" {
		t.Errorf("string: got %q, err %v", got, err)
	}
	// String targets pass through unchanged; only non-string primitives
	// are trimmed before conversion.
	if got, err := As[string](" padded \n"); err != nil || got != " padded \n" {
		t.Errorf("string passthrough: got %q, err %v", got, err)
	}
	if got, err := As[int](" 42 "); err != nil || got != 42 {
		t.Errorf("int: got %d, err %v", got, err)
	}
	if got, err := As[float64]("3.5"); err != nil || got != 3.5 {
		t.Errorf("float: got %v, err %v", got, err)
	}
	if got, err := As[bool]("true"); err != nil || !got {
		t.Errorf("bool: got %v, err %v", got, err)
	}
	if got, err := As[uint]("7"); err != nil || got != 7 {
		t.Errorf("uint: got %d, err %v", got, err)
	}
}

// TestAs_PrimitiveErrors tests that unconvertible primitives return errors.
func TestAs_PrimitiveErrors(t *testing.T) {
	if _, err := As[int]("not a number"); err == nil {
		t.Error("expected int conversion to fail")
	}
	if _, err := As[bool]("maybe"); err == nil {
		t.Error("expected bool conversion to fail")
	}
}

// TestAs_UnrecoverableStruct tests the error path when nothing can be
// decoded into the target shape.
func TestAs_UnrecoverableStruct(t *testing.T) {
	_, err := As[review]("no json here at all", WithoutRepair())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to unmarshal") {
		t.Errorf("unexpected error message: %v", err)
	}
}

// TestAs_MapTarget tests decoding into a generic map.
func TestAs_MapTarget(t *testing.T) {
	got, err := As[map[string]any](`Result: {"score": 9} done`)
	if err != nil {
		t.Fatalf("As failed: %v", err)
	}
	if got["score"] != float64(9) {
		t.Errorf("expected score=9, got %v (%T)", got["score"], got["score"])
	}
}
