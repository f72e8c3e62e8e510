// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package crud

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ashercourt/marquee/internal/platform/apperr"
)

// safeIdent guards every interpolated identifier. Column names come from the
// schema reference structs, never from request input, but a second fence
// costs nothing and catches wiring mistakes in review.
var safeIdent = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Cond is a single equality constraint (column = value).
type Cond struct {
	Column string
	Value  any
}

// InCond constrains a column to a set of values (column = ANY(values)).
type InCond struct {
	Column string
	Values []string
}

// GetOpts is the declarative query description accepted by [Repository.Get].
//
// # Composition
//
// Eq constraints are ANDed together; In is ANDed with them; Or is a raw
// disjunction clause that joins the rest of the WHERE with AND as one
// parenthesized unit. Search is ORed across SearchFields (or the table's
// configured default columns) and ANDed with everything else.
type GetOpts struct {
	// Eq lists equality constraints, ANDed together.
	Eq []Cond

	// In constrains a single column to a value set.
	In *InCond

	// Or is a raw SQL disjunction for shapes the structured filters cannot
	// express. Internal callers only — never built from request input.
	Or string

	// Search is a case-insensitive substring matched across SearchFields.
	Search string

	// SearchFields overrides the table's default search columns.
	SearchFields []string

	// SortBy orders by a single column; empty means unspecified order,
	// which must not be relied on for pagination stability.
	SortBy string

	// Desc inverts the sort direction.
	Desc bool

	// Limit caps the result count when positive.
	Limit int

	// Offset skips rows for pagination when positive.
	Offset int

	// Single requires exactly one row: zero rows is NOT_FOUND, more than
	// one is CONFLICT.
	Single bool

	// MaybeSingle tolerates zero rows (empty result, no error) but still
	// rejects more than one. Setting both Single and MaybeSingle is a
	// VALIDATION_ERROR — the flags are mutually exclusive.
	MaybeSingle bool
}

// buildSelect renders the options into a parameterized SELECT statement.
//
// The generated WHERE always starts with "1=1" so every clause can append
// uniformly with AND, mirroring how the catalog's list queries are built.
func buildSelect(spec Spec, opts GetOpts) (string, []any, error) {
	if opts.Single && opts.MaybeSingle {
		return "", nil, apperr.ValidationError("Single and MaybeSingle are mutually exclusive")
	}

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`SELECT * FROM %s WHERE 1=1`, spec.Table))

	// Equality constraints, ANDed in caller order.
	for _, cond := range opts.Eq {
		if !safeIdent.MatchString(cond.Column) {
			return "", nil, apperr.ValidationError("Invalid filter column: " + cond.Column)
		}
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", cond.Column, argID))
		args = append(args, cond.Value)
		argID++
	}

	// Membership constraint.
	if opts.In != nil {
		if !safeIdent.MatchString(opts.In.Column) {
			return "", nil, apperr.ValidationError("Invalid filter column: " + opts.In.Column)
		}
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", opts.In.Column, argID))
		args = append(args, opts.In.Values)
		argID++
	}

	// Raw disjunction, parenthesized as one clause.
	if opts.Or != "" {
		queryBuilder.WriteString(" AND (" + opts.Or + ")")
	}

	// Free-text search, ORed across the search columns.
	if opts.Search != "" {
		searchColumns := opts.SearchFields
		if len(searchColumns) == 0 {
			searchColumns = spec.SearchColumns
		}
		if len(searchColumns) > 0 {
			var clauses []string
			for _, column := range searchColumns {
				if !safeIdent.MatchString(column) {
					return "", nil, apperr.ValidationError("Invalid search column: " + column)
				}
				clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", column, argID))
			}
			queryBuilder.WriteString(" AND (" + strings.Join(clauses, " OR ") + ")")
			args = append(args, "%"+opts.Search+"%")
			argID++
		}
	}

	// Ordering.
	if opts.SortBy != "" {
		if !safeIdent.MatchString(opts.SortBy) {
			return "", nil, apperr.ValidationError("Invalid sort column: " + opts.SortBy)
		}
		direction := "ASC"
		if opts.Desc {
			direction = "DESC"
		}
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", opts.SortBy, direction))
	}

	// Row limiting. Single-row modes fetch two rows so multiplicity is
	// detected without dragging the full result set over the wire.
	limit := opts.Limit
	if opts.Single || opts.MaybeSingle {
		limit = 2
	}
	if limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT %d", limit))
	}
	if opts.Offset > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET %d", opts.Offset))
	}

	return queryBuilder.String(), args, nil
}

// Fields is the write payload shape shared by Create and UpdateByID: a map
// of column name to value. Partial updates and dynamically generated admin
// forms both produce this shape naturally.
type Fields map[string]any

// sortedColumns returns the field names in deterministic order so generated
// SQL is stable across runs (and assertable in tests).
func (f Fields) sortedColumns() []string {
	columns := make([]string, 0, len(f))
	for column := range f {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
