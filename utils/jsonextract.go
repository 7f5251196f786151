package utils

import (
	"encoding/json"
	"errors"
)

// ExtractJSONObject returns the first balanced, well-formed JSON object
// substring of s. Model responses often wrap the object in prose, so this
// scans for a '{' and walks brace depth, skipping braces inside strings.
func ExtractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate, nil
				}
				// Malformed candidate; keep scanning after it.
				start = -1
			}
		}
	}

	return "", errors.New("no JSON object found in content")
}
