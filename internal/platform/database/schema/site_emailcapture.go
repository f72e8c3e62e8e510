// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// SiteEmailCaptureTable represents the 'site.email_capture' table
type SiteEmailCaptureTable struct {
	Table       string
	ID          string
	Headline    string
	Subtext     string
	ButtonLabel string
	SuccessText string
	IsEnabled   string
	IsDeleted   string
	DeletedAt   string
	CreatedAt   string
	UpdatedAt   string
}

// SiteEmailCapture is the schema definition for site.email_capture
var SiteEmailCapture = SiteEmailCaptureTable{
	Table:       "site.email_capture",
	ID:          "id",
	Headline:    "headline",
	Subtext:     "subtext",
	ButtonLabel: "button_label",
	SuccessText: "success_text",
	IsEnabled:   "is_enabled",
	IsDeleted:   "is_deleted",
	DeletedAt:   "deleted_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}
