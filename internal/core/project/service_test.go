// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package project

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
)

func newTestService() *Service {
	// Nil pool: these tests exercise only the paths that must fail (or be
	// rejected) before any database access happens.
	repo := NewRepository(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, nil, logger)
}

func TestCreateValidation(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateInput
	}{
		{
			name:  "missing title",
			input: CreateInput{ContentType: []string{"Film"}},
		},
		{
			name:  "no content type",
			input: CreateInput{Title: "Blue Harvest"},
		},
		{
			name:  "unknown content type",
			input: CreateInput{Title: "Blue Harvest", ContentType: []string{"Podcast"}},
		},
		{
			name: "malformed poster url",
			input: CreateInput{
				Title:       "Blue Harvest",
				ContentType: []string{"Film"},
				PosterURL:   strPtr("not-a-url"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
		})
	}
}

func TestUpdateRejectsUnknownColumn(t *testing.T) {
	service := newTestService()

	_, err := service.Update(context.Background(), "some-id", map[string]any{
		"is_deleted": true, // archival has its own endpoint, never the form
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
}

func TestUpdateRejectsEmptyPayload(t *testing.T) {
	service := newTestService()

	_, err := service.Update(context.Background(), "some-id", map[string]any{})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
}

func TestListOptsValidation(t *testing.T) {
	service := newTestService()

	_, err := service.listOpts(Filter{ContentType: "Podcast"}, false)
	require.Error(t, err)

	_, err = service.listOpts(Filter{Status: "tbd"}, false)
	require.Error(t, err)

	opts, err := service.listOpts(Filter{ContentType: "Film", Status: "released"}, false)
	require.NoError(t, err)
	assert.Equal(t,
		"'Film' = ANY(content_type) AND 'released' = ANY(status)",
		opts.Or,
	)
	assert.Equal(t, []crud.Cond{{Column: schema.CatalogProject.IsDeleted, Value: false}}, opts.Eq)
}

func TestSearchByTagRejectsEmptyQuery(t *testing.T) {
	service := newTestService()

	_, err := service.SearchByTag(context.Background(), "   ")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.CodeOf(err))
}

func TestProjectFlagLookup(t *testing.T) {
	item := Project{InNowPlaying: true, InStaffPicks: true}

	assert.True(t, item.Flag(schema.CatalogProject.InNowPlaying))
	assert.True(t, item.Flag(schema.CatalogProject.InStaffPicks))
	assert.False(t, item.Flag(schema.CatalogProject.InHeroCarousel))
	assert.False(t, item.Flag("no_such_column"))
}

func strPtr(s string) *string { return &s }

/*
TestDefaultSearchColumns pins the free-text fallback set: a search with no
explicit fields must cover title, platform, and notes.
*/
func TestDefaultSearchColumns(t *testing.T) {
	ref := schema.CatalogProject
	columns := NewRepository(nil).Spec().SearchColumns

	assert.Contains(t, columns, ref.Title)
	assert.Contains(t, columns, ref.Platform)
	assert.Contains(t, columns, ref.Notes)
}
