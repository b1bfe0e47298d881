// Package pgarray decodes and encodes the curly-brace wire representation of
// PostgreSQL array and enum literals, e.g. `{"foo bar",foo,bar}`.
package pgarray

import (
	"fmt"
	"strings"
)

// Parse decodes wire text into its ordered elements. Elements are bare or
// double-quoted; a backslash-escaped quote inside a quoted element decodes to
// a literal quote. `{}` yields an empty, non-nil slice. Unbalanced braces or
// an unterminated quoted element fail with an error and no partial result.
func Parse(wire string) ([]string, error) {
	if len(wire) < 2 || wire[0] != '{' {
		return nil, fmt.Errorf("pgarray: malformed array literal %q: missing opening brace", wire)
	}
	if wire[len(wire)-1] != '}' {
		return nil, fmt.Errorf("pgarray: malformed array literal %q: missing closing brace", wire)
	}

	body := wire[1 : len(wire)-1]
	if body == "" {
		return []string{}, nil
	}

	elems := make([]string, 0, 4)
	var cur strings.Builder
	inQuotes := false
	escaped := false

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case inQuotes && c == '\\':
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			elems = append(elems, cur.String())
			cur.Reset()
		case (c == '{' || c == '}') && !inQuotes:
			return nil, fmt.Errorf("pgarray: malformed array literal %q: unbalanced brace", wire)
		default:
			cur.WriteByte(c)
		}
	}
	if inQuotes || escaped {
		return nil, fmt.Errorf("pgarray: malformed array literal %q: unterminated quoted element", wire)
	}
	elems = append(elems, cur.String())
	return elems, nil
}

// Format encodes elems into wire text that Parse round-trips losslessly.
// An element is quoted when it contains a delimiter, brace, quote, backslash,
// or whitespace, or is empty.
func Format(elems []string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		if needsQuoting(e) {
			sb.WriteByte('"')
			for j := 0; j < len(e); j++ {
				if e[j] == '"' || e[j] == '\\' {
					sb.WriteByte('\\')
				}
				sb.WriteByte(e[j])
			}
			sb.WriteByte('"')
		} else {
			sb.WriteString(e)
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

func needsQuoting(e string) bool {
	if e == "" {
		return true
	}
	return strings.ContainsAny(e, ",{}\"\\ \t\n")
}
