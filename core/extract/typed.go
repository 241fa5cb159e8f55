package extract

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// As parses raw model output into the specified type T. It is the typed
// layer page-specific call sites use on top of the generic [Extract]: shape
// validation happens here, extraction logic stays in one place.
//
// For bool and numeric targets the trimmed content is converted directly;
// string targets are returned unchanged, whitespace and all. Unlike
// [Extract], bare scalars are legitimate here: a page schema may well be a
// lone number.
//
// For structs, maps and slices, the span recovered by [Extract] is decoded
// first (so fenced or prose-wrapped JSON works transparently); if extraction
// finds nothing, the raw string is decoded as-is, with a Sanitize pass and a
// jsonrepair retry before giving up.
//
// Example usage:
//
//	type FeedbackAnalysis struct {
//	    OverallScore float64  `json:"overall_score"`
//	    Themes       []string `json:"themes"`
//	}
//
//	analysis, err := extract.As[FeedbackAnalysis](response)
//
// Callers that cannot use the typed result should fall back to the generic
// pipeline rather than surface the error to the user.
func As[T any](raw string, opts ...Option) (T, error) {
	var result T
	cfg := config{repair: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	content := strings.TrimSpace(raw)

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		// Return content as-is via reflection.
		reflect.ValueOf(&result).Elem().SetString(raw)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		// For structs, slices, maps and other complex types, decode the
		// recognized JSON span when one exists so prose wrapping and
		// code fences never reach json.Unmarshal.
		if res, ok := Extract(raw, opts...); ok {
			if err := unmarshalRepaired(res.Span, &result, cfg); err == nil {
				return result, nil
			}
		}
		if err := unmarshalRepaired(raw, &result, cfg); err != nil {
			return result, err
		}
		return result, nil
	}
}

// unmarshalRepaired unmarshals content into out, retrying with a Sanitize
// pass and then a jsonrepair pass when strict decoding fails.
func unmarshalRepaired(content string, out any, cfg config) error {
	err := json.Unmarshal([]byte(content), out)
	if err == nil {
		return nil
	}

	sanitized := Sanitize(content)
	if sanitizedErr := json.Unmarshal([]byte(sanitized), out); sanitizedErr == nil {
		return nil
	}

	if !cfg.repair {
		return fmt.Errorf("failed to unmarshal content as %T: %w", out, err)
	}

	repairedJSON, repairErr := jsonrepair.JSONRepair(sanitized)
	if repairErr != nil {
		return fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", out, err, repairErr)
	}
	if err := json.Unmarshal([]byte(repairedJSON), out); err != nil {
		return fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", out, err, content, repairedJSON)
	}
	return nil
}
