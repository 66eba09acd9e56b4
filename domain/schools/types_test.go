package schools

import (
	"testing"
)

func TestRecordGet(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		column   string
		expected string
	}{
		{"present column", Record{"name": "Royal College"}, "name", "Royal College"},
		{"absent column", Record{"name": "Royal College"}, "lat", ""},
		{"nil record", nil, "name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Get(tt.column); got != tt.expected {
				t.Errorf("Get(%q) = %q, want %q", tt.column, got, tt.expected)
			}
		})
	}
}

func TestDatasetLenAndEmpty(t *testing.T) {
	var empty Dataset
	if !empty.Empty() {
		t.Error("Expected nil dataset to be empty")
	}
	if empty.Len() != 0 {
		t.Errorf("Expected nil dataset Len 0, got %d", empty.Len())
	}

	one := Dataset{Record{"name": "Ananda College"}}
	if one.Empty() {
		t.Error("Expected one-record dataset to not be empty")
	}
	if one.Len() != 1 {
		t.Errorf("Expected Len 1, got %d", one.Len())
	}
}
