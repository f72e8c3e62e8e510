// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package pairing models the undirected link between two catalog entities.

A pairing joins a (source_id, source_ref) endpoint to a (target_id,
target_ref) endpoint, where the ref is a type tag naming which collection
the id lives in (a film pairs with a recipe, a song with a book, and so
on). Although the columns are named source and target, the edge carries no
direction: either side may be the catalog item or the recipe, so every
traversal resolves "the other side" through [OtherEndpoint] instead of
assuming an orientation.

Pairings may carry their own tags, which participate in tag-inheritance
search alongside the tags on the linked entities.
*/
package pairing

import (
	"context"
	"time"
)

// # Endpoint Type Tags

// Ref names the collection an endpoint id belongs to.
type Ref string

const (
	RefFilm      Ref = "Film"
	RefTVShow    Ref = "TV Show"
	RefSong      Ref = "Song"
	RefAudiobook Ref = "Audiobook"
	RefComic     Ref = "Comic"
	RefBook      Ref = "Book"
	RefRecipe    Ref = "Recipe"
)

// IsValid reports whether r is a recognised [Ref] value.
func (r Ref) IsValid() bool {
	switch r {
	case RefFilm, RefTVShow, RefSong, RefAudiobook, RefComic, RefBook, RefRecipe:
		return true
	}
	return false
}

// IsCatalogItem reports whether the ref resolves to the catalog item table.
// Every ref except Recipe is a content type of catalog.project.
func (r Ref) IsCatalogItem() bool {
	return r.IsValid() && r != RefRecipe
}

// Refs returns all recognised ref values, for validation messages.
func Refs() []Ref {
	return []Ref{RefFilm, RefTVShow, RefSong, RefAudiobook, RefComic, RefBook, RefRecipe}
}

// # Core Entities

// Endpoint identifies one side of a pairing.
type Endpoint struct {
	ID  string `json:"id"`
	Ref Ref    `json:"ref"`
}

// Pairing is the persisted edge record.
type Pairing struct {
	ID          string     `db:"id" json:"id"`
	SourceID    string     `db:"source_id" json:"source_id"`
	SourceRef   Ref        `db:"source_ref" json:"source_ref"`
	TargetID    string     `db:"target_id" json:"target_id"`
	TargetRef   Ref        `db:"target_ref" json:"target_ref"`
	PairingTags *string    `db:"pairing_tags" json:"pairing_tags"`
	Note        *string    `db:"note" json:"note"`
	IsDeleted   bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Source returns the source-side endpoint.
func (p Pairing) Source() Endpoint {
	return Endpoint{ID: p.SourceID, Ref: p.SourceRef}
}

// Target returns the target-side endpoint.
func (p Pairing) Target() Endpoint {
	return Endpoint{ID: p.TargetID, Ref: p.TargetRef}
}

// OtherEndpoint resolves the side of p opposite to known.
//
// The edge is unordered: a caller who reached p through either endpoint
// uses this to walk across it without caring which column it was stored
// in. The boolean is false when known is on neither side.
func OtherEndpoint(p Pairing, known Endpoint) (Endpoint, bool) {
	if p.SourceID == known.ID && p.SourceRef == known.Ref {
		return p.Target(), true
	}
	if p.TargetID == known.ID && p.TargetRef == known.Ref {
		return p.Source(), true
	}
	return Endpoint{}, false
}

// TagSource is a collection of entities that can report which of its
// members carry a given tag on their own tag field. The catalog item and
// recipe services both implement it, which lets tag-inheritance search
// traverse pairings without the domains importing each other.
type TagSource interface {
	EndpointsMatchingTag(ctx context.Context, tag string) ([]Endpoint, error)
}
