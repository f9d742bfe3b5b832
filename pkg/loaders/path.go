package loaders

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxPathLength bounds the length of file paths accepted by the loaders
const maxPathLength = 512

// validateFilePath rejects paths that are empty, overly long, contain null
// bytes or do not carry one of the allowed extensions
func validateFilePath(filename string, extensions ...string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > maxPathLength {
		return fmt.Errorf("file path too long: maximum %d characters allowed", maxPathLength)
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	for _, allowed := range extensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid file type %q: expected one of %s", ext, strings.Join(extensions, ", "))
}
