// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package schema

// CatalogPairingTable represents the 'catalog.pairing' table
//
// A pairing is an undirected edge between two catalog entities; source and
// target carry no semantic order. Either endpoint may be the project or the
// recipe, so traversals always check both orientations.
type CatalogPairingTable struct {
	Table       string
	ID          string
	SourceID    string
	SourceRef   string
	TargetID    string
	TargetRef   string
	PairingTags string
	Note        string
	IsDeleted   string
	DeletedAt   string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogPairing is the schema definition for catalog.pairing
var CatalogPairing = CatalogPairingTable{
	Table:       "catalog.pairing",
	ID:          "id",
	SourceID:    "source_id",
	SourceRef:   "source_ref",
	TargetID:    "target_id",
	TargetRef:   "target_ref",
	PairingTags: "pairing_tags",
	Note:        "note",
	IsDeleted:   "is_deleted",
	DeletedAt:   "deleted_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}
