// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

// Package schema centralizes table and column names so SQL built across the
// codebase never hard-codes identifiers. Each table gets a reference struct
// with one field per column plus the schema-qualified table name.
package schema

// CatalogProjectTable represents the 'catalog.project' table
type CatalogProjectTable struct {
	Table            string
	ID               string
	Title            string
	ContentType      string
	Status           string
	PosterURL        string
	PreviewURL       string
	Platform         string
	ReleaseYear      string
	RuntimeMinutes   string
	Synopsis         string
	Notes            string
	VibeTags         string
	InHeroCarousel   string
	InNowPlaying     string
	InComingSoon     string
	InStaffPicks     string
	InNewReleases    string
	InListenRotation string
	IsDeleted        string
	DeletedAt        string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogProject is the schema definition for catalog.project
var CatalogProject = CatalogProjectTable{
	Table:            "catalog.project",
	ID:               "id",
	Title:            "title",
	ContentType:      "content_type",
	Status:           "status",
	PosterURL:        "poster_url",
	PreviewURL:       "preview_url",
	Platform:         "platform",
	ReleaseYear:      "release_year",
	RuntimeMinutes:   "runtime_minutes",
	Synopsis:         "synopsis",
	Notes:            "notes",
	VibeTags:         "vibe_tags",
	InHeroCarousel:   "in_hero_carousel",
	InNowPlaying:     "in_now_playing",
	InComingSoon:     "in_coming_soon",
	InStaffPicks:     "in_staff_picks",
	InNewReleases:    "in_new_releases",
	InListenRotation: "in_listen_rotation",
	IsDeleted:        "is_deleted",
	DeletedAt:        "deleted_at",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
}

// FlagColumns lists every boolean shelf-membership column. The shelf
// matcher resolves "flag" filter values against this set.
func (t CatalogProjectTable) FlagColumns() []string {
	return []string{
		t.InHeroCarousel, t.InNowPlaying, t.InComingSoon,
		t.InStaffPicks, t.InNewReleases, t.InListenRotation,
	}
}
