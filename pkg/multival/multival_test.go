// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package multival_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashercourt/marquee/pkg/multival"
)

/*
TestToStringList covers the four legacy encodings the catalog database
contains: scalar, comma-separated, JSON array string, and real arrays.
*/
func TestToStringList(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{"nil", nil, nil},
		{"scalar", "Film", []string{"Film"}},
		{"scalar_padded", "  Film  ", []string{"Film"}},
		{"comma_separated", "Film, TV Show", []string{"Film", "TV Show"}},
		{"comma_with_empties", "Film,,  ,Song", []string{"Film", "Song"}},
		{"json_array", `["Film","TV Show"]`, []string{"Film", "TV Show"}},
		{"json_array_padded", ` [" Film ", "Song"] `, []string{"Film", "Song"}},
		{"malformed_json_falls_back", `["Film",`, []string{`["Film"`}},
		{"string_slice", []string{"released", " coming_soon "}, []string{"released", "coming_soon"}},
		{"nested_comma_in_element", []string{"Film,Song"}, []string{"Film", "Song"}},
		{"nested_json_in_element", []string{`["Film","Song"]`}, []string{"Film", "Song"}},
		{"any_slice", []any{"Film", 42, "Song"}, []string{"Film", "Song"}},
		{"empty_string", "", nil},
		{"unsupported_type", 42, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, multival.ToStringList(tt.input))
		})
	}
}

/*
TestContains verifies case-insensitive membership over normalized lists.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		needle string
		want   bool
	}{
		{"scalar_match", "Film", "film", true},
		{"comma_match", "Film, TV Show", "tv show", true},
		{"json_match", `["released","coming_soon"]`, "coming_soon", true},
		{"slice_match", []string{"released"}, "released", true},
		{"no_match", "Film, TV Show", "Song", false},
		{"nil_value", nil, "Film", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, multival.Contains(tt.value, tt.needle))
		})
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, multival.ContainsAny("Film, TV Show", []string{"Song", "Film"}))
	assert.False(t, multival.ContainsAny("Film", []string{"Song", "Audiobook"}))
	assert.False(t, multival.ContainsAny("Film", nil))
}
