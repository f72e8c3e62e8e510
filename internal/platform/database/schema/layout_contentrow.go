// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// LayoutContentRowTable represents the 'layout.content_row' table
//
// Content rows are curated shelf definitions — pure metadata with no
// soft-delete; removing a row never touches the catalog items it matched.
type LayoutContentRowTable struct {
	Table       string
	ID          string
	Label       string
	Page        string
	FilterType  string
	FilterValue string
	OrderIndex  string
	IsActive    string
	MaxItems    string
	CreatedAt   string
	UpdatedAt   string
}

// LayoutContentRow is the schema definition for layout.content_row
var LayoutContentRow = LayoutContentRowTable{
	Table:       "layout.content_row",
	ID:          "id",
	Label:       "label",
	Page:        "page",
	FilterType:  "filter_type",
	FilterValue: "filter_value",
	OrderIndex:  "order_index",
	IsActive:    "is_active",
	MaxItems:    "max_items",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}
