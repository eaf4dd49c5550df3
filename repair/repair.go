// Package repair coerces truncated model output back into parseable JSON.
// It only fixes trailing truncation (an output-token ceiling cutting the
// response mid-token); corruption in the middle of the text is out of scope.
package repair

import (
	"encoding/json"
	"strings"
)

// Repair returns raw unchanged when it already parses as JSON. Otherwise it
// truncates an unterminated csvData string back to its last complete
// escaped-newline boundary, then closes any string still open at end of
// input and every unclosed bracket and brace in reverse nesting order, so
// that inner array elements close before the arrays and the outer object.
func Repair(raw string) string {
	if json.Valid([]byte(raw)) {
		return raw
	}

	fixed := truncateOpenCSVData(raw)

	inString := false
	escaped := false
	var open []byte // stack of unmatched '{' and '['
	for i := 0; i < len(fixed); i++ {
		c := fixed[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				open = append(open, c)
			}
		case '}':
			if !inString && len(open) > 0 && open[len(open)-1] == '{' {
				open = open[:len(open)-1]
			}
		case ']':
			if !inString && len(open) > 0 && open[len(open)-1] == '[' {
				open = open[:len(open)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(fixed)
	if inString {
		b.WriteByte('"')
	}
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == '[' {
			b.WriteByte(']')
		} else {
			b.WriteByte('}')
		}
	}
	return b.String()
}

// truncateOpenCSVData handles the most common damage: the response was cut
// inside the last csvData value. Rather than inventing the missing tail of a
// data row, the value is cut back to the last complete \n escape and closed.
func truncateOpenCSVData(raw string) string {
	idx := strings.LastIndex(raw, `"csvData"`)
	if idx < 0 {
		return raw
	}

	i := idx + len(`"csvData"`)
	for i < len(raw) && (raw[i] == ':' || raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || raw[i] == '\r') {
		i++
	}
	if i >= len(raw) || raw[i] != '"' {
		return raw
	}
	valueStart := i + 1

	lastRowEnd := -1
	for j := valueStart; j < len(raw); j++ {
		switch raw[j] {
		case '\\':
			if j+1 < len(raw) && raw[j+1] == 'n' {
				lastRowEnd = j
			}
			j++ // skip the escaped character
		case '"':
			// value is properly terminated, nothing to repair here
			return raw
		}
	}

	if lastRowEnd >= 0 {
		return raw[:lastRowEnd] + `"`
	}
	return raw[:valueStart] + `"`
}
