package errors

import (
	"strings"
	"unicode"
)

// MaxWidth bounds the proposed root width accepted from callers. Widths above
// it are almost certainly mistakes and would only produce absurd geometry.
const MaxWidth = 1 << 20

// ValidateWidth checks a proposed root width before a layout pass.
// The engine treats negative widths as a contract violation, so they are
// rejected here instead.
func ValidateWidth(width int) error {
	if width < 0 {
		return New(ErrCodeInvalidWidth, "width must not be negative: %d", width)
	}
	if width > MaxWidth {
		return New(ErrCodeInvalidWidth, "width too large: %d (max %d)", width, MaxWidth)
	}
	return nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateText rejects text content that cannot be measured sensibly.
func ValidateText(s string) error {
	if strings.ContainsRune(s, '\x00') {
		return New(ErrCodeInvalidContent, "text contains a null byte")
	}
	const maxTextLength = 1 << 16
	if len(s) > maxTextLength {
		return New(ErrCodeInvalidContent, "text too long (max %d bytes)", maxTextLength)
	}
	return nil
}

// ValidateInsets rejects negative padding.
func ValidateInsets(top, leading, bottom, trailing int) error {
	if top < 0 || leading < 0 || bottom < 0 || trailing < 0 {
		return New(ErrCodeInvalidContent, "padding must not be negative: [%d %d %d %d]", top, leading, bottom, trailing)
	}
	return nil
}
