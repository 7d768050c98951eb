package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxSearchDepth is the largest depth accepted by ValidateDepth. The search
// is exhaustive, so anything deeper is never going to finish on a real
// puzzle.
const MaxSearchDepth = 20

// moveNameRegex matches move names such as "R", "U2", "F'", "Rw" or "x".
var moveNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*'?$`)

// ValidateMoveName validates a move name from a puzzle file or scramble.
//
// The rules are:
//   - No empty names
//   - Maximum length of 32 characters
//   - A letter followed by letters, digits or underscores
//   - An optional trailing prime (')
func ValidateMoveName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidMove, "move name cannot be empty")
	}
	if len(name) > 32 {
		return New(ErrCodeInvalidMove, "move name too long (max 32 characters)")
	}
	if !moveNameRegex.MatchString(name) {
		return New(ErrCodeInvalidMove, "invalid move name: %q", name)
	}
	return nil
}

// ValidateDepth validates a search depth flag. Zero is allowed: it is a
// legal (if pointless) ceiling for iterative deepening.
func ValidateDepth(depth int) error {
	if depth < 0 {
		return New(ErrCodeInvalidDepth, "depth cannot be negative: %d", depth)
	}
	if depth > MaxSearchDepth {
		return New(ErrCodeInvalidDepth, "depth %d exceeds maximum of %d", depth, MaxSearchDepth)
	}
	return nil
}

// ValidatePath validates a puzzle or output file path.
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

// ValidatePuzzleName validates the name of a puzzle definition.
func ValidatePuzzleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPuzzle, "puzzle name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidPuzzle, "puzzle name too long (max 64 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPuzzle, "puzzle name contains invalid control characters")
		}
	}
	return nil
}
