// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package project defines the catalog item at the center of the Marquee
dashboard.

A project is any piece of content the site curates: a film, a TV show, a
song, an audiobook, a comic, or a book. One table holds them all; the
content_type column (an array, since re-releases sometimes straddle
types) discriminates. Shelf membership is driven by a family of boolean
flag columns plus the status array.

Core Responsibility:

  - Catalogue: CRUD with archive (soft delete) semantics.
  - Curation: flag columns consumed by the shelf matcher.
  - Discovery: tag-inheritance search across pairings.
*/
package project

import (
	"time"

	"github.com/ashercourt/marquee/internal/platform/database/schema"
)

// # Content Types

// ContentType classifies what kind of media a catalog item is. The values
// double as pairing refs, so the literal strings must stay in sync with
// the pairing package.
type ContentType string

const (
	ContentTypeFilm      ContentType = "Film"
	ContentTypeTVShow    ContentType = "TV Show"
	ContentTypeSong      ContentType = "Song"
	ContentTypeAudiobook ContentType = "Audiobook"
	ContentTypeComic     ContentType = "Comic"
	ContentTypeBook      ContentType = "Book"
)

// IsValid reports whether c is a recognised [ContentType] value.
func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeFilm, ContentTypeTVShow, ContentTypeSong,
		ContentTypeAudiobook, ContentTypeComic, ContentTypeBook:
		return true
	}
	return false
}

// ContentTypes returns all recognised content type values.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentTypeFilm, ContentTypeTVShow, ContentTypeSong,
		ContentTypeAudiobook, ContentTypeComic, ContentTypeBook,
	}
}

// # Statuses

// Status values carried in the status array column.
const (
	StatusReleased   = "released"
	StatusComingSoon = "coming_soon"
	StatusArchived   = "archived"
)

// # Core Entity

// Project is the catalog item aggregate.
//
// content_type and status are stored as text[] so one item can legitimately
// carry several values; legacy rows written by earlier tooling may contain
// comma or JSON encodings inside a single element, which is why read paths
// go through pkg/multival instead of trusting the slice shape.
type Project struct {
	ID             string   `db:"id" json:"id"`
	Title          string   `db:"title" json:"title"`
	ContentType    []string `db:"content_type" json:"content_type"`
	Status         []string `db:"status" json:"status"`
	PosterURL      *string  `db:"poster_url" json:"poster_url"`
	PreviewURL     *string  `db:"preview_url" json:"preview_url"`
	Platform       *string  `db:"platform" json:"platform"`
	ReleaseYear    *int     `db:"release_year" json:"release_year"`
	RuntimeMinutes *int     `db:"runtime_minutes" json:"runtime_minutes"`
	Synopsis       *string  `db:"synopsis" json:"synopsis"`
	Notes          *string  `db:"notes" json:"notes"`
	VibeTags       *string  `db:"vibe_tags" json:"vibe_tags"` // comma-separated

	// # Shelf Flags
	InHeroCarousel   bool `db:"in_hero_carousel" json:"in_hero_carousel"`
	InNowPlaying     bool `db:"in_now_playing" json:"in_now_playing"`
	InComingSoon     bool `db:"in_coming_soon" json:"in_coming_soon"`
	InStaffPicks     bool `db:"in_staff_picks" json:"in_staff_picks"`
	InNewReleases    bool `db:"in_new_releases" json:"in_new_releases"`
	InListenRotation bool `db:"in_listen_rotation" json:"in_listen_rotation"`

	IsDeleted bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Flag returns the value of a boolean flag column by its column name.
func (p Project) Flag(column string) bool {
	switch column {
	case schema.CatalogProject.InHeroCarousel:
		return p.InHeroCarousel
	case schema.CatalogProject.InNowPlaying:
		return p.InNowPlaying
	case schema.CatalogProject.InComingSoon:
		return p.InComingSoon
	case schema.CatalogProject.InStaffPicks:
		return p.InStaffPicks
	case schema.CatalogProject.InNewReleases:
		return p.InNewReleases
	case schema.CatalogProject.InListenRotation:
		return p.InListenRotation
	}
	return false
}
