package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalizers are the single point of contact between untrusted engine/store
// values and the history codec. They never panic and never return an error:
// malformed input degrades to nil (or an empty slice).

// NormalizeString returns the trimmed value when v is a non-empty string,
// otherwise nil. Non-string input always yields nil.
func NormalizeString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizeStringArray trims every string element and drops empty strings and
// non-string elements, preserving order. Non-array input yields an empty slice.
func NormalizeStringArray(v any) []string {
	out := []string{}
	switch arr := v.(type) {
	case []string:
		for _, s := range arr {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
	case []any:
		for _, el := range arr {
			s, ok := el.(string)
			if !ok {
				continue
			}
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// NormalizeNumber returns the value as a float64 when it is a finite number,
// or a string that parses to one. Empty/whitespace strings and anything
// non-numeric yield nil.
func NormalizeNumber(v any) *float64 {
	if f, ok := numericValue(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// NormalizeBoolean returns v unchanged when it is a bool. Strings match
// "true"/"false" case-insensitively after trimming; numbers map 1 to true and
// 0 to false. Everything else yields nil.
func NormalizeBoolean(v any) *bool {
	if b, ok := v.(bool); ok {
		return &b
	}
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			t := true
			return &t
		case "false":
			f := false
			return &f
		}
		return nil
	}
	if f, ok := numericValue(v); ok {
		switch f {
		case 1:
			t := true
			return &t
		case 0:
			fv := false
			return &fv
		}
	}
	return nil
}

// numericValue unpacks the numeric kinds JSON decoding and direct Go callers
// produce. Strings are not parsed here.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
