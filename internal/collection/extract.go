package collection

import (
	"bufio"
	"io"
	"strings"
)

const pathLinePrefix = "- path:"

// ExtractPaths scans manifest text for lines of the exact shape
// `- path: <value>` and returns each value, in file order, with all
// internal whitespace stripped.
//
// This is deliberately not a YAML parse: it is the validation contract
// the collection format has always had. Entries using quoting, block
// scalars, or nesting under other keys are silently ignored.
func ExtractPaths(r io.Reader) ([]string, error) {
	var paths []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if value, ok := matchPathLine(scanner.Text()); ok {
			paths = append(paths, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}

// matchPathLine reports whether a line matches the `- path: <value>`
// shape and returns the extracted value.
func matchPathLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, pathLinePrefix) {
		return "", false
	}

	value := strings.TrimSpace(trimmed[len(pathLinePrefix):])
	if value == "" {
		return "", false
	}

	// Quoted and block-scalar values deviate from the recognized shape.
	switch value[0] {
	case '"', '\'', '|', '>':
		return "", false
	}

	// Internal whitespace is stripped from the value, not treated as
	// part of the path.
	value = strings.Join(strings.Fields(value), "")

	return value, true
}
