// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashercourt/marquee/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Now Playing", "now-playing"},
		{"accents", "Amélie", "amelie"},
		{"punctuation", "Spy x Family: Part 2!", "spy-x-family-part-2"},
		{"leading_trailing", "  --Hero Carousel-- ", "hero-carousel"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "now_playing", slug.Snake("Now Playing"))
	assert.Equal(t, "hero_carousel", slug.Snake("Hero-Carousel"))
	assert.Equal(t, "staff_picks", slug.Snake("staff_picks"))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"preserves_extension", "poster.JPG", "poster.JPG"},
		{"spaces_replaced", "my poster art.png", "my-poster-art.png"},
		{"path_traversal_stripped", "../../etc/passwd", "etc-passwd"},
		{"empty_fallback", "   ", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Filename(tt.input))
		})
	}
}
