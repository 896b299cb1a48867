package utils

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalizeString(t *testing.T) {
	if got := NormalizeString("  hello  "); got == nil || *got != "hello" {
		t.Fatalf("expected trimmed string, got %v", got)
	}
	if got := NormalizeString("   "); got != nil {
		t.Fatalf("whitespace-only string should normalize to nil, got %q", *got)
	}
	if got := NormalizeString(""); got != nil {
		t.Fatalf("empty string should normalize to nil")
	}
	for _, v := range []any{nil, 42, 1.5, true, []string{"a"}, map[string]any{}} {
		if got := NormalizeString(v); got != nil {
			t.Fatalf("non-string %v should normalize to nil, got %q", v, *got)
		}
	}
}

func TestNormalizeStringArray(t *testing.T) {
	got := NormalizeStringArray([]any{" a ", "", 7, nil, "b", "   "})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}

	got = NormalizeStringArray([]string{" x", "", "y "})
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("expected [x y], got %v", got)
	}

	for _, v := range []any{nil, "not an array", 3, map[string]any{"a": "b"}} {
		if got := NormalizeStringArray(v); len(got) != 0 {
			t.Fatalf("non-array %v should normalize to empty, got %v", v, got)
		}
	}
}

func TestNormalizeNumber(t *testing.T) {
	if got := NormalizeNumber(12.5); got == nil || *got != 12.5 {
		t.Fatalf("finite float should pass through, got %v", got)
	}
	if got := NormalizeNumber(3); got == nil || *got != 3 {
		t.Fatalf("int should pass through, got %v", got)
	}
	if got := NormalizeNumber("12.5"); got == nil || *got != 12.5 {
		t.Fatalf("numeric string should parse, got %v", got)
	}
	if got := NormalizeNumber(" 7 "); got == nil || *got != 7 {
		t.Fatalf("padded numeric string should parse, got %v", got)
	}
	if got := NormalizeNumber(json.Number("42")); got == nil || *got != 42 {
		t.Fatalf("json.Number should parse, got %v", got)
	}

	for _, v := range []any{"", "   ", "abc", nil, true, []any{1}, math.NaN(), math.Inf(1)} {
		if got := NormalizeNumber(v); got != nil {
			t.Fatalf("input %v should normalize to nil, got %v", v, *got)
		}
	}
}

func TestNormalizeBoolean(t *testing.T) {
	if got := NormalizeBoolean(true); got == nil || *got != true {
		t.Fatalf("bool should pass through")
	}
	if got := NormalizeBoolean("TRUE"); got == nil || *got != true {
		t.Fatalf(`"TRUE" should normalize to true, got %v`, got)
	}
	if got := NormalizeBoolean(" false "); got == nil || *got != false {
		t.Fatalf(`" false " should normalize to false, got %v`, got)
	}
	if got := NormalizeBoolean(1); got == nil || *got != true {
		t.Fatalf("1 should normalize to true, got %v", got)
	}
	if got := NormalizeBoolean(0.0); got == nil || *got != false {
		t.Fatalf("0 should normalize to false, got %v", got)
	}

	for _, v := range []any{2, -1, 0.5, "yes", "1", "", nil, []any{true}} {
		if got := NormalizeBoolean(v); got != nil {
			t.Fatalf("input %v should normalize to nil, got %v", v, *got)
		}
	}
}
