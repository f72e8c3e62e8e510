// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package crud implements the generic entity repository shared by every
catalog domain.

A [Repository] is parameterized over an entity type and bound to a table
[Spec]. It covers the operations the dashboard needs everywhere — create,
partial update, fetch by id, declarative fetch-many, permanent delete, and
the archive toggle — so simple entities (footer links, page settings, shop
config) need no bespoke SQL at all, and richer domains layer their own
queries on top of the same pool.

# Error policy

Expected failures come back as [apperr.AppError] values classified by
internal/platform/dberr; the repository never panics. Absence is not an
error: fetch-by-id of a missing row and update-by-id of a missing row both
return (nil, nil), and callers check the pointer.

# Scanning

Entities carry `db` struct tags and are hydrated via
[pgx.RowToAddrOfStructByNameLax], so SELECT * stays correct when columns
are added by migration.
*/
package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/dberr"
)

// Spec binds a repository to a physical table.
type Spec struct {
	// Table is the schema-qualified table name (e.g. "catalog.project").
	Table string

	// SoftDelete enables ToggleSoftDelete. Tables without the
	// is_deleted/deleted_at column pair must leave it false.
	SoftDelete bool

	// SearchColumns are the default columns for GetOpts.Search when the
	// caller does not name its own.
	SearchColumns []string
}

// Repository is the generic data-access wrapper for one table.
type Repository[T any] struct {
	pool *pgxpool.Pool
	spec Spec
}

// NewRepository constructs a repository bound to the given pool and spec.
func NewRepository[T any](pool *pgxpool.Pool, spec Spec) *Repository[T] {
	return &Repository[T]{pool: pool, spec: spec}
}

// Spec exposes the bound table spec (read-only) for callers composing
// their own queries on top of the repository's table.
func (repository *Repository[T]) Spec() Spec {
	return repository.spec
}

/*
Create inserts one row and returns the created entity, including
server-computed id and timestamps.

Parameters:
  - ctx: context.Context
  - fields: Fields (column -> value; must not be empty)

Returns:
  - *T: The created row as returned by RETURNING *
  - error: VALIDATION_ERROR for an empty payload, CONFLICT/UNPROCESSABLE
    for backend rejections, INTERNAL_ERROR otherwise
*/
func (repository *Repository[T]) Create(ctx context.Context, fields Fields) (*T, error) {
	if len(fields) == 0 {
		return nil, apperr.ValidationError("Create payload must not be empty")
	}

	columns := fields.sortedColumns()
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		if !safeIdent.MatchString(column) {
			return nil, apperr.ValidationError("Invalid column: " + column)
		}
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[column]
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		repository.spec.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "create")
	}

	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, dberr.Wrap(err, "create_scan")
	}

	return entity, nil
}

/*
UpdateByID applies a partial update and returns the updated row.

The empty-payload guard runs before any network access: a dynamic form that
submits nothing must never reach the database, where a zero-SET UPDATE
would be malformed anyway.

Returns:
  - *T: The updated row, or nil (with nil error) when no row matched the id
  - error: VALIDATION_ERROR for an empty payload, classified backend errors
*/
func (repository *Repository[T]) UpdateByID(ctx context.Context, id string, fields Fields) (*T, error) {
	if len(fields) == 0 {
		return nil, apperr.ValidationError("Update payload must not be empty")
	}

	columns := fields.sortedColumns()
	assignments := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	argID := 1

	for _, column := range columns {
		if !safeIdent.MatchString(column) {
			return nil, apperr.ValidationError("Invalid column: " + column)
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, fields[column])
		argID++
	}

	// updated_at always moves with the write; callers never set it directly.
	assignments = append(assignments, "updated_at = now()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING *`,
		repository.spec.Table,
		strings.Join(assignments, ", "),
		argID,
	)
	args = append(args, id)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "update")
	}

	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unmatched id is not an error; the caller checks for nil.
			return nil, nil
		}
		return nil, dberr.Wrap(err, "update_scan")
	}

	return entity, nil
}

/*
GetByID fetches a single row by primary key.

Absence is signalled by a nil entity with a nil error, not by an error —
"not found" and "found" are both successful reads.
*/
func (repository *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, repository.spec.Table)

	rows, err := repository.pool.Query(ctx, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_by_id")
	}

	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "get_by_id_scan")
	}

	return entity, nil
}

/*
Get applies the [GetOpts] DSL and returns the matching rows.

Single-row modes shape the result contract:
  - Single: exactly one row, or NOT_FOUND (zero) / CONFLICT (multiple).
  - MaybeSingle: zero rows is an empty slice with nil error; multiple rows
    is still a CONFLICT.
  - Both flags set: VALIDATION_ERROR, detected before any network access.
*/
func (repository *Repository[T]) Get(ctx context.Context, opts GetOpts) ([]T, error) {
	query, args, err := buildSelect(repository.spec, opts)
	if err != nil {
		return nil, err
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "get")
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, dberr.Wrap(err, "get_scan")
	}

	return shapeSingle(entities, opts)
}

// shapeSingle applies the single-row result contract to a fetched slice.
// Kept pure so the zero/one/many matrix is testable without a pool.
func shapeSingle[T any](entities []T, opts GetOpts) ([]T, error) {
	if opts.Single {
		switch len(entities) {
		case 0:
			return nil, apperr.NotFound("Record")
		case 1:
		default:
			return nil, apperr.Conflict("Query matched more than one row")
		}
	}

	if opts.MaybeSingle && len(entities) > 1 {
		return nil, apperr.Conflict("Query matched more than one row")
	}

	return entities, nil
}

/*
Count returns how many rows match the filter portion of opts.

Sorting, limits, and the single-row flags are ignored; Count pairs with
[Repository.Get] to produce pagination metadata from one options value.
*/
func (repository *Repository[T]) Count(ctx context.Context, opts GetOpts) (int, error) {
	opts.SortBy = ""
	opts.Limit = 0
	opts.Offset = 0
	opts.Single = false
	opts.MaybeSingle = false

	query, args, err := buildSelect(repository.spec, opts)
	if err != nil {
		return 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM (%s) AS filtered`, query)
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count")
	}

	return total, nil
}

/*
DeleteByIDPermanent removes a row irreversibly.

The operation is idempotent: deleting an id that no longer exists is a
success, so the archive view can double-submit without surfacing errors.
*/
func (repository *Repository[T]) DeleteByIDPermanent(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, repository.spec.Table)

	if _, err := repository.pool.Exec(ctx, query, id); err != nil {
		return dberr.Wrap(err, "delete_permanent")
	}

	return nil
}

/*
ToggleSoftDelete archives or restores a row.

is_deleted and deleted_at always change together — deleted_at is now() when
archiving and NULL when restoring — preserving the invariant that
deleted_at is null exactly when is_deleted is false.

Returns (nil, nil) when no row matched the id.
*/
func (repository *Repository[T]) ToggleSoftDelete(ctx context.Context, id string, isDeleted bool) (*T, error) {
	if !repository.spec.SoftDelete {
		return nil, apperr.Unprocessable("This resource does not support archival")
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET is_deleted = $1,
		    deleted_at = CASE WHEN $1 THEN now() ELSE NULL END,
		    updated_at = now()
		WHERE id = $2
		RETURNING *
	`, repository.spec.Table)

	rows, err := repository.pool.Query(ctx, query, isDeleted, id)
	if err != nil {
		return nil, dberr.Wrap(err, "toggle_soft_delete")
	}

	entity, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "toggle_soft_delete_scan")
	}

	return entity, nil
}
