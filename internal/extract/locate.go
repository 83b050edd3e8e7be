// Package extract locates sections in flattened schedule text and parses
// them into the typed policy record. Everything operates on an in-memory
// string; absence of a marker or field is a value, not an error.
package extract

import (
	"regexp"
	"strings"
)

// LocateSection returns the span of text from the first case-insensitive
// occurrence of startMarker up to the nearest following occurrence of any of
// the endMarkers. Section order varies between schedule templates, so the end
// is minimized over all known "next section" candidates; when none occur the
// section runs to the end of the document. ok is false when startMarker is
// absent, which is a legitimate outcome for optional sections.
func LocateSection(doc, startMarker string, endMarkers []string) (string, bool) {
	upper := strings.ToUpper(doc)
	start := strings.Index(upper, strings.ToUpper(startMarker))
	if start < 0 {
		return "", false
	}

	end := len(doc)
	searchFrom := start + len(startMarker)
	for _, marker := range endMarkers {
		idx := strings.Index(upper[searchFrom:], strings.ToUpper(marker))
		if idx >= 0 && searchFrom+idx < end {
			end = searchFrom + idx
		}
	}

	return doc[start:end], true
}

// FieldValue extracts the value of a label-anchored field: the label followed
// by ":" and the remainder of that line. The first occurrence wins; repeated
// labels in tables are handled by dedicated multi-line extractors instead.
// Returns "" when the label is not found.
func FieldValue(text, label string) string {
	return FieldValueDelim(text, label, ":")
}

// FieldValueDelim is FieldValue with an explicit label/value delimiter
func FieldValueDelim(text, label, delimiter string) string {
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `\s*` + regexp.QuoteMeta(delimiter) + `\s*(.+?)(?:\n|$)`)
	if m := pattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// optString returns nil for empty values so missing fields serialize as null
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// splitBefore splits text immediately before every match of re, keeping the
// match at the head of its block. Stands in for lookahead-based splitting,
// which RE2 does not support.
func splitBefore(text string, re *regexp.Regexp) []string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var blocks []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			blocks = append(blocks, text[prev:loc[0]])
		}
		prev = loc[0]
	}
	blocks = append(blocks, text[prev:])
	return blocks
}
