// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashercourt/marquee/internal/core/project"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
)

func row(filterType, filterValue string) ContentRow {
	return ContentRow{
		ID:          "row-" + filterType,
		Label:       filterValue,
		Page:        PageHome,
		FilterType:  filterType,
		FilterValue: filterValue,
		IsActive:    true,
	}
}

func TestMatchesContentType(t *testing.T) {
	shelf := row("content_type", "Film,TV Show")

	assert.True(t, Matches(shelf, project.Project{ContentType: []string{"Film"}}))
	assert.True(t, Matches(shelf, project.Project{ContentType: []string{"tv show"}}), "case-insensitive")
	assert.True(t, Matches(shelf, project.Project{ContentType: []string{"Song", "Film"}}), "any of the item's types")
	assert.False(t, Matches(shelf, project.Project{ContentType: []string{"Song"}}))
	assert.False(t, Matches(shelf, project.Project{}))
}

func TestMatchesStatus(t *testing.T) {
	shelf := row("status", "released")

	assert.True(t, Matches(shelf, project.Project{Status: []string{"released", "coming_soon"}}))
	assert.False(t, Matches(shelf, project.Project{Status: []string{"coming_soon"}}))
}

func TestMatchesFlag(t *testing.T) {
	shelf := row("flag", "now_playing")

	assert.True(t, Matches(shelf, project.Project{InNowPlaying: true}))
	assert.False(t, Matches(shelf, project.Project{InNowPlaying: false}))

	// Display-label form resolves to the same column.
	assert.True(t, Matches(row("flag", "Now Playing"), project.Project{InNowPlaying: true}))

	// Exact column name is accepted too.
	assert.True(t, Matches(row("flag", "in_now_playing"), project.Project{InNowPlaying: true}))
}

func TestMatchesComingSoonAlias(t *testing.T) {
	shelf := row("flag", "Coming Soon")

	// The label reads the status array, not a boolean column.
	assert.True(t, Matches(shelf, project.Project{Status: []string{"coming_soon"}}))
	assert.False(t, Matches(shelf, project.Project{InComingSoon: true}), "flag column alone does not satisfy the alias")
}

func TestMatchesLegacySingleType(t *testing.T) {
	assert.True(t, Matches(row("Audiobook", ""), project.Project{ContentType: []string{"Audiobook"}}))
	assert.True(t, Matches(row("Song", ""), project.Project{ContentType: []string{"Song", "Film"}}))
	assert.False(t, Matches(row("Audiobook", ""), project.Project{ContentType: []string{"Film"}}))
}

func TestMatchesCustomAndUnknown(t *testing.T) {
	anything := project.Project{ContentType: []string{"Film"}, InNowPlaying: true}

	assert.False(t, Matches(row("custom", "whatever"), anything))
	assert.False(t, Matches(row("mystery_filter", "x"), anything))
}

func TestMatchesNeverIncludesArchived(t *testing.T) {
	archived := project.Project{ContentType: []string{"Film"}, IsDeleted: true}
	assert.False(t, Matches(row("content_type", "Film"), archived))
}

func TestMatchesMultiShapeFields(t *testing.T) {
	shelf := row("content_type", "Film")

	// Legacy rows may hold a JSON-encoded or comma-joined string inside a
	// single array element; the matcher normalizes before comparing.
	assert.True(t, Matches(shelf, project.Project{ContentType: []string{`["Film","Song"]`}}))
	assert.True(t, Matches(shelf, project.Project{ContentType: []string{"Film,Song"}}))
}

func TestBuildFetchOpts(t *testing.T) {
	ref := schema.CatalogProject

	t.Run("content type row", func(t *testing.T) {
		opts, ok := BuildFetchOpts(row("content_type", "Film,TV Show"))
		require.True(t, ok)
		assert.Equal(t, "'Film' = ANY(content_type) OR 'TV Show' = ANY(content_type)", opts.Or)
		assert.Equal(t, []crud.Cond{{Column: ref.IsDeleted, Value: false}}, opts.Eq)
	})

	t.Run("status row normalizes values", func(t *testing.T) {
		opts, ok := BuildFetchOpts(row("status", "Coming Soon"))
		require.True(t, ok)
		assert.Equal(t, "'coming_soon' = ANY(status)", opts.Or)
	})

	t.Run("flag row", func(t *testing.T) {
		opts, ok := BuildFetchOpts(row("flag", "staff_picks"))
		require.True(t, ok)
		assert.Equal(t, "in_staff_picks = true", opts.Or)
	})

	t.Run("coming soon alias becomes a status clause", func(t *testing.T) {
		opts, ok := BuildFetchOpts(row("flag", "coming soon"))
		require.True(t, ok)
		assert.Equal(t, "'coming_soon' = ANY(status)", opts.Or)
	})

	t.Run("custom row is not fetchable", func(t *testing.T) {
		_, ok := BuildFetchOpts(row("custom", "editorial"))
		assert.False(t, ok)
	})

	t.Run("unresolvable flag is not fetchable", func(t *testing.T) {
		_, ok := BuildFetchOpts(row("flag", "no_such_flag"))
		assert.False(t, ok)
	})
}

func TestApplyTemplate(t *testing.T) {
	ref := schema.CatalogProject

	t.Run("flag row sets the column and nothing else", func(t *testing.T) {
		draft := crud.Fields{"title": "Blue Harvest"}
		merged := ApplyTemplate(row("flag", "now_playing"), draft)

		assert.Equal(t, true, merged[ref.InNowPlaying])
		assert.Equal(t, "Blue Harvest", merged["title"])
		assert.NotContains(t, draft, ref.InNowPlaying, "input draft is not mutated")
	})

	t.Run("content type row unions values", func(t *testing.T) {
		draft := crud.Fields{ref.ContentType: []string{"Song"}}
		merged := ApplyTemplate(row("content_type", "Film"), draft)

		assert.Equal(t, []string{"Song", "Film"}, merged[ref.ContentType])
	})

	t.Run("coming soon flag row adds the status value", func(t *testing.T) {
		merged := ApplyTemplate(row("flag", "Coming Soon"), crud.Fields{})
		assert.Equal(t, []string{"coming_soon"}, merged[ref.Status])
	})
}

func TestRemoveTemplateInvertsApply(t *testing.T) {
	ref := schema.CatalogProject
	shelf := row("flag", "now_playing")

	draft := crud.Fields{"title": "Blue Harvest"}
	applied := ApplyTemplate(shelf, draft)
	removed := RemoveTemplate(shelf, applied, nil)

	assert.Equal(t, false, removed[ref.InNowPlaying])
	assert.Equal(t, "Blue Harvest", removed["title"])
}

func TestRemoveTemplateKeepsOverlappingClaims(t *testing.T) {
	ref := schema.CatalogProject
	first := row("flag", "now_playing")
	second := ContentRow{
		ID:          "row-second",
		FilterType:  "flag",
		FilterValue: "now_playing",
		IsActive:    true,
	}

	draft := crud.Fields{ref.InNowPlaying: true}

	// Another active, matching row still claims the flag: it survives.
	kept := RemoveTemplate(first, draft, []ContentRow{second})
	assert.Equal(t, true, kept[ref.InNowPlaying])

	// No other claimant: the flag is cleared.
	cleared := RemoveTemplate(first, draft, nil)
	assert.Equal(t, false, cleared[ref.InNowPlaying])
}

func TestRemoveTemplateSubtractsListValues(t *testing.T) {
	ref := schema.CatalogProject
	shelf := row("content_type", "Film")

	draft := crud.Fields{ref.ContentType: []string{"Film", "Song"}}
	result := RemoveTemplate(shelf, draft, nil)

	assert.Equal(t, []string{"Song"}, result[ref.ContentType])
}
