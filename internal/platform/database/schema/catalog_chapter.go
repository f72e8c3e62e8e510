// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// CatalogChapterTable represents the 'catalog.chapter' table
type CatalogChapterTable struct {
	Table           string
	ID              string
	ProjectID       string
	Title           string
	Number          string
	DurationSeconds string
	AudioURL        string
	IsDeleted       string
	DeletedAt       string
	CreatedAt       string
	UpdatedAt       string
}

// CatalogChapter is the schema definition for catalog.chapter
var CatalogChapter = CatalogChapterTable{
	Table:           "catalog.chapter",
	ID:              "id",
	ProjectID:       "project_id",
	Title:           "title",
	Number:          "number",
	DurationSeconds: "duration_seconds",
	AudioURL:        "audio_url",
	IsDeleted:       "is_deleted",
	DeletedAt:       "deleted_at",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}
