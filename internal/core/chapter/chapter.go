// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

// Package chapter manages the episodes and audio chapters that hang off a
// catalog item. Chapters are always scoped to their parent project: the
// list and create endpoints live under /projects/{id}/chapters, while
// chapter-level edits address the chapter id directly.
package chapter

import "time"

// Chapter is one episode or audio segment of a catalog item.
type Chapter struct {
	ID              string     `db:"id" json:"id"`
	ProjectID       string     `db:"project_id" json:"project_id"`
	Title           string     `db:"title" json:"title"`
	Number          int        `db:"number" json:"number"`
	DurationSeconds *int       `db:"duration_seconds" json:"duration_seconds"`
	AudioURL        *string    `db:"audio_url" json:"audio_url"`
	IsDeleted       bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt       *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
