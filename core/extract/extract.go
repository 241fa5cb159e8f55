package extract

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Strategy identifies which recovery strategy produced a Result.
type Strategy int

const (
	// StrategyNone means no strategy succeeded.
	StrategyNone Strategy = iota

	// StrategyWhole means the whole (trimmed) input parsed as JSON.
	StrategyWhole

	// StrategyFenced means the JSON was found inside a ``` code fence.
	StrategyFenced

	// StrategyEmbedded means the JSON was located by bracket matching
	// inside surrounding prose.
	StrategyEmbedded
)

// String returns the strategy name used in logs and debug output.
func (s Strategy) String() string {
	switch s {
	case StrategyWhole:
		return "whole"
	case StrategyFenced:
		return "fenced"
	case StrategyEmbedded:
		return "embedded"
	default:
		return "none"
	}
}

// Result is a successful extraction: the decoded JSON value plus the prose
// spans around the recognized JSON.
//
// Value is always a structured value: *Object (key order preserved) or
// []any. Nested values use the same representation, with numbers kept as
// json.Number so they render exactly as the model wrote them.
type Result struct {
	// Value is the decoded JSON object or array.
	Value any

	// Span is the original substring the value was decoded from, before
	// any sanitizing or repair. Useful for raw-JSON debug views and for
	// re-decoding into a typed shape.
	Span string

	// Prefix is the trimmed prose before the recognized span, empty for
	// the whole-string strategy.
	Prefix string

	// Suffix is the trimmed prose after the recognized span, empty for
	// the whole-string strategy.
	Suffix string

	// Strategy records which recovery strategy matched.
	Strategy Strategy
}

type config struct {
	balanced bool
	repair   bool
}

// Option configures extraction behavior.
type Option func(*config)

// WithBalancedScan makes the embedded-JSON strategy find the closing
// bracket with a depth-balanced walk from the first opener instead of taking
// the last occurrence of the closing character.
//
// The default last-occurrence heuristic mis-extracts when trailing prose
// itself contains a closer, but its suffix capture is what existing callers
// see, so the balanced scan is opt-in.
func WithBalancedScan() Option {
	return func(c *config) {
		c.balanced = true
	}
}

// WithoutRepair disables the jsonrepair retry, so only strict JSON (plus the
// Sanitize cleanup pass) is accepted.
func WithoutRepair() Option {
	return func(c *config) {
		c.repair = false
	}
}

// Extract attempts to recover a JSON object or array from raw model output.
// Strategies run in a fixed order, first success wins:
//
//  1. the whole trimmed input is a JSON document
//  2. a ``` fenced block (optionally tagged json) contains one
//  3. a JSON span is embedded in prose, located by bracket matching
//
// Bare scalar JSON (a lone number, string, bool or null) does not count as
// a successful extraction: scalars carry no sectioning value for display.
//
// The returned bool is false when nothing structured was recovered; that is
// a normal outcome, not an error, and the caller should fall back to prose.
func Extract(raw string, opts ...Option) (Result, bool) {
	cfg := config{repair: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{}, false
	}

	if res, ok := extractWhole(trimmed, cfg); ok {
		return res, true
	}
	if res, ok := extractFenced(trimmed, cfg); ok {
		return res, true
	}
	if res, ok := extractEmbedded(trimmed, cfg); ok {
		return res, true
	}
	return Result{}, false
}

// extractWhole handles input that is one JSON document, possibly surrounded
// by whitespace only.
func extractWhole(trimmed string, cfg config) (Result, bool) {
	first, last := trimmed[0], trimmed[len(trimmed)-1]
	if !(first == '{' && last == '}') && !(first == '[' && last == ']') {
		return Result{}, false
	}
	v, ok := decodeCandidate(trimmed, cfg)
	if !ok {
		return Result{}, false
	}
	return Result{Value: v, Span: trimmed, Strategy: StrategyWhole}, true
}

// extractFenced handles JSON set off in a triple-backtick code fence.
func extractFenced(trimmed string, cfg config) (Result, bool) {
	open := strings.Index(trimmed, "```")
	if open < 0 {
		return Result{}, false
	}
	rest := trimmed[open+3:]
	closing := strings.Index(rest, "```")
	if closing < 0 {
		return Result{}, false
	}

	span := strings.TrimSpace(dropFenceTag(rest[:closing]))
	if span == "" {
		return Result{}, false
	}
	v, ok := decodeCandidate(span, cfg)
	if !ok {
		return Result{}, false
	}
	return Result{
		Value:    v,
		Span:     span,
		Prefix:   strings.TrimSpace(trimmed[:open]),
		Suffix:   strings.TrimSpace(rest[closing+3:]),
		Strategy: StrategyFenced,
	}, true
}

// dropFenceTag removes an optional language tag from the start of fence
// content. On a multi-line fence the tag is the opening line; on a
// single-line fence like ```json{...}``` the tag must end at a {, [ or
// whitespace boundary, so an unrelated word starting with "json" is left
// intact.
func dropFenceTag(inner string) string {
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		tag := strings.TrimSpace(inner[:nl])
		if tag == "" || strings.EqualFold(tag, "json") {
			return inner[nl+1:]
		}
		return inner
	}
	if strings.HasPrefix(inner, "json") {
		tail := inner[len("json"):]
		if tail == "" || tail[0] == '{' || tail[0] == '[' || tail[0] == ' ' || tail[0] == '\t' {
			return tail
		}
	}
	return inner
}

// extractEmbedded locates a JSON span inside prose by bracket matching.
// The opener must not be the first character; that case belongs to the
// whole-string strategy.
func extractEmbedded(trimmed string, cfg config) (Result, bool) {
	open := strings.IndexAny(trimmed, "{[")
	if open <= 0 {
		return Result{}, false
	}

	var end int
	if cfg.balanced {
		end = matchBracket(trimmed, open)
	} else {
		// Last occurrence of the closing character, not a balanced
		// walk. Mis-extracts when trailing prose contains the closer;
		// see WithBalancedScan.
		closer := byte('}')
		if trimmed[open] == '[' {
			closer = ']'
		}
		end = strings.LastIndexByte(trimmed, closer)
	}
	if end <= open {
		return Result{}, false
	}

	span := trimmed[open : end+1]
	v, ok := decodeCandidate(span, cfg)
	if !ok {
		return Result{}, false
	}
	return Result{
		Value:    v,
		Span:     span,
		Prefix:   strings.TrimSpace(trimmed[:open]),
		Suffix:   strings.TrimSpace(trimmed[end+1:]),
		Strategy: StrategyEmbedded,
	}, true
}

// matchBracket returns the index of the bracket matching s[open], walking
// forward with a depth counter and skipping string literals. Returns -1 if
// the bracket never closes.
func matchBracket(s string, open int) int {
	opener := s[open]
	closer := byte('}')
	if opener == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// decodeCandidate decodes one strategy's candidate span: strict decode
// first, then the Sanitize cleanup pass, then at most one jsonrepair
// attempt. Only objects and arrays count as success.
func decodeCandidate(candidate string, cfg config) (any, bool) {
	v, err := decodeOrdered(candidate)
	if err != nil {
		v, err = decodeOrdered(Sanitize(candidate))
	}
	if err != nil && cfg.repair {
		if repaired, repairErr := jsonrepair.JSONRepair(Sanitize(candidate)); repairErr == nil {
			v, err = decodeOrdered(repaired)
		}
	}
	if err != nil {
		return nil, false
	}
	return v, isStructured(v)
}

// isStructured reports whether v is a JSON object or array.
func isStructured(v any) bool {
	switch v.(type) {
	case *Object, []any:
		return true
	default:
		return false
	}
}
