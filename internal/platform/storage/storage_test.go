// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey(t *testing.T) {
	at := time.Unix(1756000000, 0).UTC()

	tests := []struct {
		name     string
		category Category
		filename string
		want     string
	}{
		{
			name:     "plain filename",
			category: CategoryPoster,
			filename: "cover.png",
			want:     "posters/1756000000-cover.png",
		},
		{
			name:     "spaces and unsafe characters collapse",
			category: CategoryHero,
			filename: "My Film (final)!!.jpg",
			want:     "hero/1756000000-My-Film-final-.jpg",
		},
		{
			name:     "empty filename falls back",
			category: CategoryMisc,
			filename: "",
			want:     "misc/1756000000-file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildKey(tt.category, tt.filename, at))
		})
	}
}

func TestPublicURL(t *testing.T) {
	withBase := &service{bucket: "marquee-assets", publicBaseURL: "https://cdn.marquee.page"}
	assert.Equal(t, "https://cdn.marquee.page/posters/1-a.png", withBase.PublicURL("/posters/1-a.png"))

	noBase := &service{bucket: "marquee-assets"}
	assert.Equal(t, "https://storage.googleapis.com/marquee-assets/posters/1-a.png", noBase.PublicURL("posters/1-a.png"))
}
