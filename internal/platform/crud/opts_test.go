// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package crud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashercourt/marquee/internal/platform/apperr"
)

var projectSpec = Spec{
	Table:         "catalog.project",
	SoftDelete:    true,
	SearchColumns: []string{"title", "platform", "notes"},
}

/*
TestBuildSelect_Clauses verifies the text and arguments generated for each
knob of the query options DSL.
*/
func TestBuildSelect_Clauses(t *testing.T) {
	tests := []struct {
		name      string
		opts      GetOpts
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no_options",
			opts:      GetOpts{},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1`,
			wantArgs:  nil,
		},
		{
			name: "equality_anded",
			opts: GetOpts{Eq: []Cond{
				{Column: "is_deleted", Value: false},
				{Column: "platform", Value: "netflix"},
			}},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 AND is_deleted = $1 AND platform = $2`,
			wantArgs:  []any{false, "netflix"},
		},
		{
			name:      "in_membership",
			opts:      GetOpts{In: &InCond{Column: "status", Values: []string{"released", "coming_soon"}}},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 AND status = ANY($1)`,
			wantArgs:  []any{[]string{"released", "coming_soon"}},
		},
		{
			name:      "raw_or_parenthesized",
			opts:      GetOpts{Or: "in_now_playing = true OR in_hero_carousel = true"},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 AND (in_now_playing = true OR in_hero_carousel = true)`,
			wantArgs:  nil,
		},
		{
			name:      "search_default_columns",
			opts:      GetOpts{Search: "dune"},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 AND (title ILIKE $1 OR platform ILIKE $1 OR notes ILIKE $1)`,
			wantArgs:  []any{"%dune%"},
		},
		{
			name:      "search_explicit_columns",
			opts:      GetOpts{Search: "spicy", SearchFields: []string{"vibe_tags"}},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 AND (vibe_tags ILIKE $1)`,
			wantArgs:  []any{"%spicy%"},
		},
		{
			name:      "sort_and_limit",
			opts:      GetOpts{SortBy: "created_at", Desc: true, Limit: 10},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 ORDER BY created_at DESC LIMIT 10`,
			wantArgs:  nil,
		},
		{
			name:      "offset_for_pagination",
			opts:      GetOpts{SortBy: "title", Limit: 20, Offset: 40},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 ORDER BY title ASC LIMIT 20 OFFSET 40`,
			wantArgs:  nil,
		},
		{
			name:      "single_fetches_two_rows",
			opts:      GetOpts{Single: true, Limit: 50},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 LIMIT 2`,
			wantArgs:  nil,
		},
		{
			name:      "maybe_single_fetches_two_rows",
			opts:      GetOpts{MaybeSingle: true},
			wantQuery: `SELECT * FROM catalog.project WHERE 1=1 LIMIT 2`,
			wantArgs:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelect(projectSpec, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

/*
TestBuildSelect_FlagConflict documents the deterministic precedence decision:
setting both Single and MaybeSingle is rejected outright.
*/
func TestBuildSelect_FlagConflict(t *testing.T) {
	_, _, err := buildSelect(projectSpec, GetOpts{Single: true, MaybeSingle: true})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
}

/*
TestBuildSelect_RejectsUnsafeIdentifiers ensures interpolated identifiers
are fenced even though they never come from request input.
*/
func TestBuildSelect_RejectsUnsafeIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		opts GetOpts
	}{
		{"eq_column", GetOpts{Eq: []Cond{{Column: "title; DROP TABLE", Value: 1}}}},
		{"in_column", GetOpts{In: &InCond{Column: "status)--", Values: []string{"x"}}}},
		{"sort_column", GetOpts{SortBy: "created_at DESC; --"}},
		{"search_column", GetOpts{Search: "x", SearchFields: []string{"ti tle"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := buildSelect(projectSpec, tt.opts)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
		})
	}
}

/*
TestRepository_EmptyPayloadGuards proves the empty-payload guards fire
before any database access: the repository below has no pool at all, so
reaching the network would panic.
*/
func TestRepository_EmptyPayloadGuards(t *testing.T) {
	type entity struct {
		ID string `db:"id"`
	}
	repository := NewRepository[entity](nil, projectSpec)

	_, err := repository.UpdateByID(context.Background(), "some-id", Fields{})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))

	_, err = repository.Create(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
}

/*
TestRepository_ToggleWithoutSoftDelete rejects archival on tables that do
not carry the is_deleted/deleted_at pair.
*/
func TestRepository_ToggleWithoutSoftDelete(t *testing.T) {
	type entity struct {
		ID string `db:"id"`
	}
	repository := NewRepository[entity](nil, Spec{Table: "layout.content_row"})

	_, err := repository.ToggleSoftDelete(context.Background(), "some-id", true)
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.CodeOf(err))
}

func TestFields_SortedColumns(t *testing.T) {
	fields := Fields{"title": "Dune", "platform": "hbo", "release_year": 2021}
	assert.Equal(t, []string{"platform", "release_year", "title"}, fields.sortedColumns())
}

/*
TestShapeSingle pins the single-row result contract across the
zero/one/many row counts for both shaping flags.
*/
func TestShapeSingle(t *testing.T) {
	type entity struct {
		ID string `db:"id"`
	}
	one := []entity{{ID: "a"}}
	two := []entity{{ID: "a"}, {ID: "b"}}

	tests := []struct {
		name     string
		rows     []entity
		opts     GetOpts
		wantRows int
		wantCode string
	}{
		{"plain_many_rows", two, GetOpts{}, 2, ""},
		{"single_zero_rows", nil, GetOpts{Single: true}, 0, "NOT_FOUND"},
		{"single_one_row", one, GetOpts{Single: true}, 1, ""},
		{"single_many_rows", two, GetOpts{Single: true}, 0, "CONFLICT"},
		{"maybe_single_zero_rows", nil, GetOpts{MaybeSingle: true}, 0, ""},
		{"maybe_single_one_row", one, GetOpts{MaybeSingle: true}, 1, ""},
		{"maybe_single_many_rows", two, GetOpts{MaybeSingle: true}, 0, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shaped, err := shapeSingle(tt.rows, tt.opts)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperr.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, shaped, tt.wantRows)
		})
	}
}
