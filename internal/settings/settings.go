// Package settings resolves command line arguments into a validated
// run configuration. Arguments may appear in any order: the operation
// keyword, the length and the path are recognized by elimination.
package settings

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

// Operation selects which dimension a resize drives
type Operation int

const (
	OpNone Operation = iota
	OpHeight
	OpWidth
)

// operationKeywords maps accepted keyword spellings to operations
var operationKeywords = map[string]Operation{
	"h":      OpHeight,
	"height": OpHeight,
	"w":      OpWidth,
	"width":  OpWidth,
}

func (op Operation) String() string {
	switch op {
	case OpHeight:
		return "height"
	case OpWidth:
		return "width"
	default:
		return "none"
	}
}

// Settings holds the resolved configuration for one run
type Settings struct {
	Operation Operation
	Length    int
	Path      string
}

// ParseOperation matches a token against the operation keywords,
// case-insensitively. Returns OpNone if the token is not a keyword.
func ParseOperation(token string) Operation {
	return operationKeywords[strings.ToLower(token)]
}

// isDigits reports whether a token consists entirely of decimal digits
func isDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Parse resolves the raw argument tokens into Settings without
// mutating the input. The first token matching an operation keyword
// selects the operation, the first all-digit token among the rest is
// the length, and the first remaining token is the path, resolved to
// an absolute path. Any further tokens are ignored.
func Parse(args []string) Settings {
	var s Settings

	opIndex, lengthIndex := -1, -1
	for i, token := range args {
		if opIndex < 0 && ParseOperation(token) != OpNone {
			opIndex = i
			continue
		}
		if lengthIndex < 0 && isDigits(token) {
			lengthIndex = i
		}
	}

	if opIndex >= 0 {
		s.Operation = ParseOperation(args[opIndex])
	}
	if lengthIndex >= 0 {
		s.Length, _ = strconv.Atoi(args[lengthIndex])
	}

	for i, token := range args {
		if i == opIndex || i == lengthIndex {
			continue
		}
		if abs, err := filepath.Abs(token); err == nil {
			s.Path = abs
		} else {
			s.Path = token
		}
		break
	}

	return s
}

// Validate checks that a parsed Settings names an operation and a
// positive length. Runs before any file is touched.
func (s Settings) Validate() error {
	if s.Operation == OpNone {
		return errors.New("Missing 'height' or 'width'.")
	}
	if s.Length <= 0 {
		return errors.New("Missing resize length.")
	}
	return nil
}
