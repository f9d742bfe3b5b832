package loaders

import (
	"strings"
	"testing"
)

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{"Valid json", "scenes/box.json", false},
		{"Upper-case extension", "scenes/BOX.JSON", false},
		{"Relative path", "../models/box.json", false},
		{"Empty", "", true},
		{"Wrong extension", "scenes/box.pbrt", true},
		{"No extension", "scenes/box", true},
		{"Null byte", "scenes/box\x00.json", true},
		{"Too long", strings.Repeat("a", 600) + ".json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilePath(tt.path, ".json")
			if tt.expectError && err == nil {
				t.Errorf("Expected error for %q", tt.path)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.path, err)
			}
		})
	}
}
