// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package shelf implements content rows: saved, reusable queries over the
catalog that curate the public pages.

A row pairs a filter (type + value) with display metadata (label, page,
position, item cap). The same matching rules serve two directions:

  - fetching the items a row should display, and
  - showing, while editing an item, which shelves it currently sits on.

Rows are pure metadata with hard delete only; removing a row never
touches the catalog items it matched.
*/
package shelf

import "time"

// # Pages

// Page names a public page a row can appear on.
type Page string

const (
	PageHome   Page = "home"
	PageWatch  Page = "watch"
	PageListen Page = "listen"
	PageRead   Page = "read"
)

// IsValid reports whether p is a recognised [Page] value.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageWatch, PageListen, PageRead:
		return true
	}
	return false
}

// # Filter Types

// Filter type discriminators. Anything else in the column is treated as a
// legacy single-type shortcut ("Audiobook", "Song") where the filter type
// itself names the content type to match.
const (
	FilterStatus      = "status"
	FilterContentType = "content_type"
	FilterFlag        = "flag"
	FilterCustom      = "custom"
)

// ContentRow is a shelf definition.
type ContentRow struct {
	ID          string    `db:"id" json:"id"`
	Label       string    `db:"label" json:"label"`
	Page        Page      `db:"page" json:"page"`
	FilterType  string    `db:"filter_type" json:"filter_type"`
	FilterValue string    `db:"filter_value" json:"filter_value"` // comma-separated means "any of"
	OrderIndex  int       `db:"order_index" json:"order_index"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	MaxItems    *int      `db:"max_items" json:"max_items"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
