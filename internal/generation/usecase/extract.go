package usecase

import (
	"encoding/json"
	"strings"
)

// extractTaskArray returns the balanced JSON array starting at the first '[' in raw.
// The span is returned verbatim when it is valid JSON. Otherwise raw is returned unchanged
// and ok is false; no second candidate is tried.
func extractTaskArray(raw string) (string, bool) {
	start := strings.IndexByte(raw, '[')
	if start < 0 {
		return raw, false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(raw); i++ {
		ch := raw[i]

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
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				span := raw[start : i+1]
				if !json.Valid([]byte(span)) {
					return raw, false
				}
				return span, true
			}
		}
	}

	// Unbalanced.
	return raw, false
}
