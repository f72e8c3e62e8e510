// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// SiteFooterLinkTable represents the 'site.footer_link' table
type SiteFooterLinkTable struct {
	Table      string
	ID         string
	Label      string
	URL        string
	OrderIndex string
	IsDeleted  string
	DeletedAt  string
	CreatedAt  string
	UpdatedAt  string
}

// SiteFooterLink is the schema definition for site.footer_link
var SiteFooterLink = SiteFooterLinkTable{
	Table:      "site.footer_link",
	ID:         "id",
	Label:      "label",
	URL:        "url",
	OrderIndex: "order_index",
	IsDeleted:  "is_deleted",
	DeletedAt:  "deleted_at",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}
