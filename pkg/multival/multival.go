// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package multival normalizes the multi-shape field encodings that exist in the
catalog database.

Historically, list-like columns (content types, statuses, tag strings) were
written by several generations of admin tooling and therefore arrive in four
shapes: a bare scalar ("Film"), a comma-separated string ("Film, TV Show"),
a JSON-encoded array ("[\"Film\",\"TV Show\"]"), or a real array. Every read
boundary funnels through [ToStringList] so the rest of the codebase only ever
sees an ordered []string.

On write, the canonical representation is a real Postgres text[] column.
This package exists to tolerate the legacy shapes, not to perpetuate them.
*/
package multival

import (
	"encoding/json"
	"strings"
)

// ToStringList coerces any of the known list encodings into an ordered,
// trimmed slice of strings. Empty entries are dropped. A nil or empty input
// yields nil.
func ToStringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		// Legacy rows sometimes hold a comma or JSON encoding inside a
		// single array element; expand each element rather than trusting
		// the outer shape.
		var out []string
		for _, item := range v {
			out = append(out, fromString(item)...)
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, fromString(s)...)
			}
		}
		return out
	case string:
		return fromString(v)
	default:
		return nil
	}
}

// Contains reports whether the normalized list form of value contains needle,
// compared case-insensitively.
func Contains(value any, needle string) bool {
	needle = strings.TrimSpace(needle)
	for _, item := range ToStringList(value) {
		if strings.EqualFold(item, needle) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the normalized list form of value contains any
// of the needles, compared case-insensitively.
func ContainsAny(value any, needles []string) bool {
	for _, needle := range needles {
		if Contains(value, needle) {
			return true
		}
	}
	return false
}

// fromString decodes a single string into a list, trying the JSON array shape
// first and falling back to comma splitting.
func fromString(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	// JSON-encoded arrays start with '[' once trimmed.
	if strings.HasPrefix(trimmed, "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return cleanAll(decoded)
		}
		// Malformed JSON degrades to the comma path rather than erroring;
		// read boundaries must never fail on legacy data.
	}

	var out []string
	for _, part := range strings.Split(trimmed, ",") {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// cleanAll trims every entry and drops empties, preserving order.
func cleanAll(in []string) []string {
	var out []string
	for _, item := range in {
		if clean := strings.TrimSpace(item); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
