package tablechart

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveKinds(t *testing.T) {
	tests := []struct {
		name        string
		spec        KindSpec
		columns     int
		kinds       []Kind
		categorical bool
	}{
		{"single line", SingleKind(KindLine), 2, []Kind{KindLine, KindLine}, false},
		{"empty single", KindSpec{}, 1, []Kind{KindLine}, false},
		{"single column", SingleKind(KindColumn), 2, []Kind{KindColumn, KindColumn}, true},
		{"single line_w_col", SingleKind(KindLineWithColumn), 1, []Kind{KindLineWithColumn}, true},
		{"mixed list", KindList(KindColumn, KindLine), 2, []Kind{KindColumn, KindLineWithColumn}, true},
		{"bar list", KindList(KindLine, KindBar, KindLine), 3, []Kind{KindLineWithColumn, KindBar, KindLineWithColumn}, true},
		{"line list", KindList(KindLine, KindLine), 2, []Kind{KindLine, KindLine}, true},
	}

	for _, tt := range tests {
		result, err := ResolveKinds(tt.spec, tt.columns)
		if err != nil {
			t.Errorf("ResolveKinds(%s) error: %v", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(result.Kinds, tt.kinds) || result.Categorical != tt.categorical {
			t.Errorf("ResolveKinds(%s) = %v/%v, expected %v/%v",
				tt.name, result.Kinds, result.Categorical, tt.kinds, tt.categorical)
		}
	}
}

func TestResolveKindsErrors(t *testing.T) {
	if _, err := ResolveKinds(KindList(KindLine), 2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
	if _, err := ResolveKinds(SingleKind("pie"), 1); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind for single, got %v", err)
	}
	if _, err := ResolveKinds(KindList(KindLine, "area"), 2); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind for list, got %v", err)
	}
}

func TestParseKindSpec(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"", "line", true},
		{"column", "column", true},
		{"column, line", "[column,line]", true},
		{"line_w_col", "line_w_col", true},
		{"pie", "", false},
		{"line,pie", "", false},
	}

	for _, tt := range tests {
		spec, err := ParseKindSpec(tt.input)
		if (err == nil) != tt.valid {
			t.Errorf("ParseKindSpec(%q) error = %v, expected valid %v", tt.input, err, tt.valid)
			continue
		}
		if tt.valid && spec.String() != tt.expected {
			t.Errorf("ParseKindSpec(%q) = %s, expected %s", tt.input, spec, tt.expected)
		}
	}
}
