// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

// Package slug generates ASCII-safe identifiers from arbitrary Unicode strings.
//
// # Usage
//
// Slugs serve two purposes in Marquee: human-readable identifiers for flag
// columns derived from row labels (e.g. "Now Playing" -> "now_playing"), and
// sanitized filenames for object-storage upload paths.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
	// unsafeFilename matches characters not allowed in object-storage keys.
	unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// Snake converts a label into snake_case, used to resolve shelf flag columns
// from their display labels ("Now Playing" -> "now_playing").
func Snake(s string) string {
	return strings.ReplaceAll(From(s), "-", "_")
}

// Filename sanitizes an uploaded file's name for use inside an object-storage
// key. Unlike [From] it preserves the extension dot and original casing.
func Filename(name string) string {
	clean := unsafeFilename.ReplaceAllString(strings.TrimSpace(name), "-")
	clean = strings.Trim(clean, "-.")
	if clean == "" {
		return "file"
	}
	return clean
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
