// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

// Package recipe manages the kitchen side of the catalog. Recipes pair
// with films, songs, and books (a stew for a long winter film, a cocktail
// for an album) and take part in tag-inheritance search symmetrically with
// catalog items.
package recipe

import "time"

// Recipe is a kitchen entry pairable with catalog items.
type Recipe struct {
	ID           string     `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	FlavorTags   *string    `db:"flavor_tags" json:"flavor_tags"` // comma-separated
	HeroImageURL *string    `db:"hero_image_url" json:"hero_image_url"`
	Body         *string    `db:"body" json:"body"`
	IsDeleted    bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
