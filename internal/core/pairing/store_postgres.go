// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package pairing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
	"github.com/ashercourt/marquee/internal/platform/dberr"
)

// Store is the data-access layer for pairings. Generic writes go through
// the shared [crud.Repository]; the both-orientation lookups need their
// own SQL because the edge is unordered.
type Store struct {
	*crud.Repository[Pairing]
	db *pgxpool.Pool
}

// NewStore constructs a pairing store bound to the given pool.
func NewStore(db *pgxpool.Pool) *Store {
	spec := crud.Spec{
		Table:         schema.CatalogPairing.Table,
		SoftDelete:    true,
		SearchColumns: []string{schema.CatalogPairing.PairingTags, schema.CatalogPairing.Note},
	}
	return &Store{
		Repository: crud.NewRepository[Pairing](db, spec),
		db:         db,
	}
}

// ListForEndpoint returns every live pairing touching the endpoint,
// regardless of which column it was stored in.
func (store *Store) ListForEndpoint(ctx context.Context, endpoint Endpoint) ([]Pairing, error) {
	ref := schema.CatalogPairing
	query := fmt.Sprintf(`
		SELECT * FROM %s
		WHERE NOT %s
		  AND ((%s = $1 AND %s = $2) OR (%s = $1 AND %s = $2))
		ORDER BY %s DESC
	`,
		ref.Table, ref.IsDeleted,
		ref.SourceID, ref.SourceRef, ref.TargetID, ref.TargetRef,
		ref.CreatedAt,
	)

	rows, err := store.db.Query(ctx, query, endpoint.ID, string(endpoint.Ref))
	if err != nil {
		return nil, dberr.Wrap(err, "list_pairings_for_endpoint")
	}

	pairings, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[Pairing])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_pairings_for_endpoint")
	}
	return pairings, nil
}

// ListMatchingTag returns live pairings whose own tag field contains the
// query, case-insensitively.
func (store *Store) ListMatchingTag(ctx context.Context, tag string) ([]Pairing, error) {
	ref := schema.CatalogPairing
	query := fmt.Sprintf(`
		SELECT * FROM %s
		WHERE NOT %s AND %s ILIKE $1
	`, ref.Table, ref.IsDeleted, ref.PairingTags)

	rows, err := store.db.Query(ctx, query, "%"+tag+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "list_pairings_by_tag")
	}

	pairings, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[Pairing])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_pairings_by_tag")
	}
	return pairings, nil
}

// FindDuplicate looks for a live pairing linking the two endpoints in
// either orientation. Returns (nil, nil) when the edge does not exist.
func (store *Store) FindDuplicate(ctx context.Context, a, b Endpoint) (*Pairing, error) {
	ref := schema.CatalogPairing
	query := fmt.Sprintf(`
		SELECT * FROM %s
		WHERE NOT %s
		  AND ((%s = $1 AND %s = $2 AND %s = $3 AND %s = $4)
		    OR (%s = $3 AND %s = $4 AND %s = $1 AND %s = $2))
		LIMIT 1
	`,
		ref.Table, ref.IsDeleted,
		ref.SourceID, ref.SourceRef, ref.TargetID, ref.TargetRef,
		ref.SourceID, ref.SourceRef, ref.TargetID, ref.TargetRef,
	)

	rows, err := store.db.Query(ctx, query, a.ID, string(a.Ref), b.ID, string(b.Ref))
	if err != nil {
		return nil, dberr.Wrap(err, "find_duplicate_pairing")
	}

	duplicates, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[Pairing])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_duplicate_pairing")
	}
	if len(duplicates) == 0 {
		return nil, nil
	}
	return &duplicates[0], nil
}
