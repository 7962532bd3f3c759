package models

import (
	"testing"
)

func TestIDListScan(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected IDList
	}{
		{"nil column", nil, IDList{}},
		{"empty string", "", IDList{}},
		{"string ids", `["1","2","3"]`, IDList{"1", "2", "3"}},
		{"numeric ids", `[1,2,3]`, IDList{"1", "2", "3"}},
		{"mixed ids", `["a",21,"3"]`, IDList{"a", "21", "3"}},
		{"bytes", []byte(`["x"]`), IDList{"x"}},
		{"malformed json degrades to empty", `{"not":"an array"`, IDList{}},
		{"non-array json degrades to empty", `"just a string"`, IDList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l IDList
			if err := l.Scan(tt.input); err != nil {
				t.Fatalf("Scan(%v) returned error: %v", tt.input, err)
			}
			if len(l) != len(tt.expected) {
				t.Fatalf("Scan(%v) = %v, want %v", tt.input, l, tt.expected)
			}
			for i := range l {
				if l[i] != tt.expected[i] {
					t.Errorf("Scan(%v)[%d] = %q, want %q", tt.input, i, l[i], tt.expected[i])
				}
			}
		})
	}
}

func TestIDListScanRejectsUnsupportedType(t *testing.T) {
	var l IDList
	if err := l.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestIDListValue(t *testing.T) {
	tests := []struct {
		name     string
		input    IDList
		expected string
	}{
		{"nil list", nil, `[]`},
		{"empty list", IDList{}, `[]`},
		{"ids", IDList{"1", "21"}, `["1","21"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.input.Value()
			if err != nil {
				t.Fatalf("Value() returned error: %v", err)
			}
			if v != tt.expected {
				t.Errorf("Value() = %v, want %v", v, tt.expected)
			}
		})
	}
}

func TestIDListContainsIsExactMatch(t *testing.T) {
	l := IDList{"21", "3"}

	// "1" is a substring of "21" but not a member
	if l.Contains("1") {
		t.Error(`Contains("1") should be false for ["21","3"]`)
	}
	if !l.Contains("21") {
		t.Error(`Contains("21") should be true`)
	}
	if !l.Contains("3") {
		t.Error(`Contains("3") should be true`)
	}
}

func TestIDListIntersects(t *testing.T) {
	tests := []struct {
		a, b     IDList
		expected bool
	}{
		{IDList{"1", "2"}, IDList{"2", "9"}, true},
		{IDList{"1", "2"}, IDList{"9"}, false},
		{IDList{}, IDList{"1"}, false},
		{IDList{"1"}, IDList{}, false},
		{IDList{"21"}, IDList{"1"}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Intersects(tt.b); got != tt.expected {
			t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{"abc", "abc"},
		{42, "42"},
		{int64(42), "42"},
		{float64(42), "42"},
		{float64(42.5), "42.5"},
	}

	for _, tt := range tests {
		if got := FormatID(tt.input); got != tt.expected {
			t.Errorf("FormatID(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
