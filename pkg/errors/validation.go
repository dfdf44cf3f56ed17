package errors

import (
	"strings"
	"unicode"
)

// ValidateGraphName validates a stored-graph name for safety and
// correctness. Names become store document keys and URL path segments,
// so the rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "graph name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidName, "graph name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "graph name contains control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "graph name contains path characters")
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	return nil
}

// ValidateFormat checks that a requested render format is supported.
// Only "dot" and "json" exist today.
func ValidateFormat(format string) error {
	switch format {
	case "dot", "json":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "unsupported format: %q (want dot or json)", format)
	}
}
