// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// KitchenRecipeTable represents the 'kitchen.recipe' table
type KitchenRecipeTable struct {
	Table        string
	ID           string
	Title        string
	FlavorTags   string
	HeroImageURL string
	Body         string
	IsDeleted    string
	DeletedAt    string
	CreatedAt    string
	UpdatedAt    string
}

// KitchenRecipe is the schema definition for kitchen.recipe
var KitchenRecipe = KitchenRecipeTable{
	Table:        "kitchen.recipe",
	ID:           "id",
	Title:        "title",
	FlavorTags:   "flavor_tags",
	HeroImageURL: "hero_image_url",
	Body:         "body",
	IsDeleted:    "is_deleted",
	DeletedAt:    "deleted_at",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
