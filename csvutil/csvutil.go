// Package csvutil parses single lines of the comma-separated data the model
// embeds in csvData blobs. It is intentionally simpler than encoding/csv:
// a bare double quote toggles quoted mode anywhere in a field, commas inside
// quoted mode are literal, and there is no "" escape.
package csvutil

import "strings"

// ParseLine splits one CSV line into trimmed field values. Quote characters
// toggle quoted mode and are not emitted. The terminal field is always
// emitted, with or without a trailing separator.
func ParseLine(line string) []string {
	fields := []string{}
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
