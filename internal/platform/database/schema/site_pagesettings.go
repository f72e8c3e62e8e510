// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// SitePageSettingsTable represents the 'site.page_settings' table
//
// One row per public page. Rows are keyed by the page slug so the
// storefront can fetch its copy and hero art with a single lookup.
type SitePageSettingsTable struct {
	Table        string
	ID           string
	Page         string
	HeroTitle    string
	HeroTagline  string
	HeroImageURL string
	IntroText    string
	IsDeleted    string
	DeletedAt    string
	CreatedAt    string
	UpdatedAt    string
}

// SitePageSettings is the schema definition for site.page_settings
var SitePageSettings = SitePageSettingsTable{
	Table:        "site.page_settings",
	ID:           "id",
	Page:         "page",
	HeroTitle:    "hero_title",
	HeroTagline:  "hero_tagline",
	HeroImageURL: "hero_image_url",
	IntroText:    "intro_text",
	IsDeleted:    "is_deleted",
	DeletedAt:    "deleted_at",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
