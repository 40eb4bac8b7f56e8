package easyproj

import (
	"errors"
	"testing"
)

func TestParseGroupAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected GroupAddress
		wantErr  bool
	}{
		{"1", 1, false},
		{"5122", 5122, false},
		{"65535", 65535, false},
		{"0", 0, true},
		{"65536", 0, true},
		{"-1", 0, true},
		{"1/2/3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseGroupAddress(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGroupAddress(%q) = %v, want error", tt.input, result)
				}
				if !errors.Is(err, ErrInvalidAddress) {
					t.Errorf("ParseGroupAddress(%q) error = %v, want ErrInvalidAddress", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGroupAddress(%q) failed: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseGroupAddress(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGroupAddressString(t *testing.T) {
	tests := []struct {
		input    GroupAddress
		expected string
	}{
		{0, "0"},
		{5122, "5122"},
		{65535, "65535"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.input.String(); result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGroupAddressThreeLevel(t *testing.T) {
	tests := []struct {
		input    GroupAddress
		expected string
	}{
		{0, "0/0/0"},
		{2305, "1/1/1"},
		{5122, "2/4/2"},
		{65535, "31/7/255"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.input.ThreeLevel(); result != tt.expected {
				t.Errorf("ThreeLevel() = %q, want %q", result, tt.expected)
			}
		})
	}
}
