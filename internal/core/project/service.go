// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashercourt/marquee/internal/core/pairing"
	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
	"github.com/ashercourt/marquee/internal/platform/validate"
	"github.com/ashercourt/marquee/pkg/multival"
	"github.com/ashercourt/marquee/pkg/slice"
	"github.com/ashercourt/marquee/pkg/uuidv7"
)

// NewRepository binds the generic repository to the catalog item table.
func NewRepository(db *pgxpool.Pool) *crud.Repository[Project] {
	ref := schema.CatalogProject
	return crud.NewRepository[Project](db, crud.Spec{
		Table:         ref.Table,
		SoftDelete:    true,
		SearchColumns: []string{ref.Title, ref.Platform, ref.Notes, ref.Synopsis, ref.VibeTags},
	})
}

// writableColumns is the whitelist for dynamic partial updates. The admin
// form posts column -> value maps, so anything outside this set is a
// caller bug, not a new feature.
var writableColumns = func() map[string]bool {
	ref := schema.CatalogProject
	columns := map[string]bool{
		ref.Title:          true,
		ref.ContentType:    true,
		ref.Status:         true,
		ref.PosterURL:      true,
		ref.PreviewURL:     true,
		ref.Platform:       true,
		ref.ReleaseYear:    true,
		ref.RuntimeMinutes: true,
		ref.Synopsis:       true,
		ref.Notes:          true,
		ref.VibeTags:       true,
	}
	for _, flag := range ref.FlagColumns() {
		columns[flag] = true
	}
	return columns
}()

// # Service Layer

// Service orchestrates the business logic for catalog items.
type Service struct {
	repo       *crud.Repository[Project]
	pairings   *pairing.Service
	tagSources []pairing.TagSource
	logger     *slog.Logger
}

// NewService constructs a project [Service]. Tag sources for inheritance
// search are attached afterwards via [Service.SetTagSources] because the
// sources include this service itself.
func NewService(repo *crud.Repository[Project], pairings *pairing.Service, logger *slog.Logger) *Service {
	return &Service{repo: repo, pairings: pairings, logger: logger}
}

// SetTagSources wires the collections whose tags flow across pairings.
func (service *Service) SetTagSources(sources ...pairing.TagSource) {
	service.tagSources = sources
}

// CreateInput is the payload for adding a catalog item.
type CreateInput struct {
	Title          string   `json:"title"`
	ContentType    []string `json:"content_type"`
	Status         []string `json:"status"`
	PosterURL      *string  `json:"poster_url"`
	PreviewURL     *string  `json:"preview_url"`
	Platform       *string  `json:"platform"`
	ReleaseYear    *int     `json:"release_year"`
	RuntimeMinutes *int     `json:"runtime_minutes"`
	Synopsis       *string  `json:"synopsis"`
	Notes          *string  `json:"notes"`
	VibeTags       *string  `json:"vibe_tags"`
}

/*
Create persists a new catalog item.

Description: Validates the title and content types, normalizes the
multi-shape list fields to their canonical array form, and assigns a
UUID v7 identity.

Returns:
  - *Project: The created item
  - error: VALIDATION_ERROR for bad input, classified backend errors
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Project, error) {
	ref := schema.CatalogProject

	contentTypes := multival.ToStringList(input.ContentType)
	statuses := multival.ToStringList(input.Status)

	validator := &validate.Validator{}
	validator.Required(ref.Title, input.Title).MaxLen(ref.Title, input.Title, 300)
	validator.Custom(ref.ContentType, len(contentTypes) == 0, "at least one content type is required")
	for _, contentType := range contentTypes {
		validator.Custom(ref.ContentType, !ContentType(contentType).IsValid(),
			fmt.Sprintf("unknown content type '%s'", contentType))
	}
	if input.PosterURL != nil && *input.PosterURL != "" {
		validator.URL(ref.PosterURL, *input.PosterURL)
	}
	if input.PreviewURL != nil && *input.PreviewURL != "" {
		validator.URL(ref.PreviewURL, *input.PreviewURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	fields := crud.Fields{
		ref.ID:          uuidv7.New(),
		ref.Title:       input.Title,
		ref.ContentType: contentTypes,
		ref.Status:      statuses,
	}
	setOptional(fields, ref.PosterURL, input.PosterURL)
	setOptional(fields, ref.PreviewURL, input.PreviewURL)
	setOptional(fields, ref.Platform, input.Platform)
	setOptional(fields, ref.Synopsis, input.Synopsis)
	setOptional(fields, ref.Notes, input.Notes)
	setOptional(fields, ref.VibeTags, input.VibeTags)
	if input.ReleaseYear != nil {
		fields[ref.ReleaseYear] = *input.ReleaseYear
	}
	if input.RuntimeMinutes != nil {
		fields[ref.RuntimeMinutes] = *input.RuntimeMinutes
	}

	created, err := service.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	service.logger.Info("project_created",
		slog.String("project_id", created.ID),
		slog.String("title", created.Title),
	)
	return created, nil
}

func setOptional(fields crud.Fields, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

/*
Update applies a dynamic partial update.

Description: The dashboard generates edit forms from the schema, so the
payload arrives as a free column -> value map. Columns are checked against
the writable whitelist and the multi-shape list fields are normalized to
their canonical array encoding before the write.

Returns:
  - *Project: The updated item, or nil when no row matched the id
  - error: VALIDATION_ERROR for unknown columns or an empty payload
*/
func (service *Service) Update(ctx context.Context, id string, payload map[string]any) (*Project, error) {
	ref := schema.CatalogProject

	fields := crud.Fields{}
	for column, value := range payload {
		if !writableColumns[column] {
			return nil, apperr.ValidationError(fmt.Sprintf("Column '%s' is not writable", column))
		}
		switch column {
		case ref.ContentType, ref.Status:
			// Canonical write form is a real array, whatever shape the
			// client sent.
			fields[column] = multival.ToStringList(value)
		default:
			fields[column] = value
		}
	}

	return service.repo.UpdateByID(ctx, id, fields)
}

// Get fetches one catalog item by id; nil when absent.
func (service *Service) Get(ctx context.Context, id string) (*Project, error) {
	return service.repo.GetByID(ctx, id)
}

// Fetch runs a declarative query against the catalog item table. The shelf
// package builds its row queries through this.
func (service *Service) Fetch(ctx context.Context, opts crud.GetOpts) ([]Project, error) {
	return service.repo.Get(ctx, opts)
}

// Filter narrows List results.
type Filter struct {
	Query       string
	ContentType string
	Status      string
	Platform    string
	ReleaseYear *int
}

/*
List returns live catalog items with filtering, search, and pagination.

Parameters:
  - ctx: context.Context
  - filter: Filter (free-text query plus structured constraints)
  - limit, offset: pagination window

Returns:
  - []Project: The page of items, newest first
  - int: Total matching count for pagination metadata
  - error: Classified backend errors
*/
func (service *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Project, int, error) {
	opts, err := service.listOpts(filter, false)
	if err != nil {
		return nil, 0, err
	}

	total, err := service.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	opts.Limit = limit
	opts.Offset = offset
	items, err := service.repo.Get(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListArchived returns soft-deleted items for the archive view.
func (service *Service) ListArchived(ctx context.Context, limit, offset int) ([]Project, int, error) {
	opts, err := service.listOpts(Filter{}, true)
	if err != nil {
		return nil, 0, err
	}

	total, err := service.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	opts.Limit = limit
	opts.Offset = offset
	items, err := service.repo.Get(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// listOpts translates a Filter into the query options DSL. Array-column
// membership (content_type, status) cannot be expressed as an equality
// condition, so it lands in the raw Or clause; the interpolated values are
// enum-checked first and never flow from free request text.
func (service *Service) listOpts(filter Filter, archived bool) (crud.GetOpts, error) {
	ref := schema.CatalogProject
	opts := crud.GetOpts{
		Eq:     []crud.Cond{{Column: ref.IsDeleted, Value: archived}},
		Search: filter.Query,
		SortBy: ref.CreatedAt,
		Desc:   true,
	}

	var arrayClauses []string
	if filter.ContentType != "" {
		if !ContentType(filter.ContentType).IsValid() {
			return crud.GetOpts{}, apperr.ValidationError(fmt.Sprintf("unknown content type '%s'", filter.ContentType))
		}
		arrayClauses = append(arrayClauses, fmt.Sprintf("'%s' = ANY(%s)", filter.ContentType, ref.ContentType))
	}
	if filter.Status != "" {
		switch filter.Status {
		case StatusReleased, StatusComingSoon, StatusArchived:
			arrayClauses = append(arrayClauses, fmt.Sprintf("'%s' = ANY(%s)", filter.Status, ref.Status))
		default:
			return crud.GetOpts{}, apperr.ValidationError(fmt.Sprintf("unknown status '%s'", filter.Status))
		}
	}
	if len(arrayClauses) > 0 {
		opts.Or = strings.Join(arrayClauses, " AND ")
	}

	if filter.Platform != "" {
		opts.Eq = append(opts.Eq, crud.Cond{Column: ref.Platform, Value: filter.Platform})
	}
	if filter.ReleaseYear != nil {
		opts.Eq = append(opts.Eq, crud.Cond{Column: ref.ReleaseYear, Value: *filter.ReleaseYear})
	}

	return opts, nil
}

// Archive soft-deletes an item; nil result when no row matched.
func (service *Service) Archive(ctx context.Context, id string) (*Project, error) {
	return service.repo.ToggleSoftDelete(ctx, id, true)
}

// Restore brings an archived item back; nil result when no row matched.
func (service *Service) Restore(ctx context.Context, id string) (*Project, error) {
	return service.repo.ToggleSoftDelete(ctx, id, false)
}

// Delete removes an item permanently. Only reachable from the archive view.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.repo.DeleteByIDPermanent(ctx, id)
}

// # Tag Inheritance Search

/*
SearchByTag finds catalog items carrying a tag, directly or by
inheritance.

Description: Three sources feed the result, unioned and de-duplicated by
id:

 1. items whose own vibe_tags contain the query;
 2. items on either end of a pairing whose pairing_tags contain it;
 3. items paired with any entity (recipe or catalog item) whose own tag
    field contains it.

Pairings are unordered edges, so every traversal resolves the far side
through [pairing.OtherEndpoint] rather than assuming which column holds
the item.
*/
func (service *Service) SearchByTag(ctx context.Context, tag string) ([]Project, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, apperr.ValidationError("Search tag must not be empty")
	}

	ref := schema.CatalogProject

	// Source 1: directly tagged items.
	direct, err := service.repo.Get(ctx, crud.GetOpts{
		Eq:           []crud.Cond{{Column: ref.IsDeleted, Value: false}},
		Search:       tag,
		SearchFields: []string{ref.VibeTags},
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(direct))
	for _, item := range direct {
		seen[item.ID] = true
	}

	var inheritedIDs []string
	collect := func(id string) {
		if !seen[id] {
			seen[id] = true
			inheritedIDs = append(inheritedIDs, id)
		}
	}

	// Source 2: pairings that carry the tag themselves.
	taggedPairings, err := service.pairings.ListMatchingTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	for _, edge := range taggedPairings {
		for _, endpoint := range []pairing.Endpoint{edge.Source(), edge.Target()} {
			if endpoint.Ref.IsCatalogItem() {
				collect(endpoint.ID)
			}
		}
	}

	// Source 3: items paired with a tagged entity.
	for _, source := range service.tagSources {
		endpoints, err := source.EndpointsMatchingTag(ctx, tag)
		if err != nil {
			return nil, err
		}
		for _, endpoint := range endpoints {
			edges, err := service.pairings.ListForEndpoint(ctx, endpoint)
			if err != nil {
				return nil, err
			}
			for _, edge := range edges {
				other, ok := pairing.OtherEndpoint(edge, endpoint)
				if ok && other.Ref.IsCatalogItem() {
					collect(other.ID)
				}
			}
		}
	}

	results := direct
	if len(inheritedIDs) > 0 {
		inherited, err := service.repo.Get(ctx, crud.GetOpts{
			Eq: []crud.Cond{{Column: ref.IsDeleted, Value: false}},
			In: &crud.InCond{Column: ref.ID, Values: inheritedIDs},
		})
		if err != nil {
			return nil, err
		}
		results = append(results, inherited...)
	}

	return slice.UniqueBy(results, func(item Project) string { return item.ID }), nil
}

// EndpointsMatchingTag implements [pairing.TagSource]: each live item whose
// own tags contain the query yields one endpoint per content type, since a
// pairing may reference the item under any of them.
func (service *Service) EndpointsMatchingTag(ctx context.Context, tag string) ([]pairing.Endpoint, error) {
	ref := schema.CatalogProject
	matched, err := service.repo.Get(ctx, crud.GetOpts{
		Eq:           []crud.Cond{{Column: ref.IsDeleted, Value: false}},
		Search:       tag,
		SearchFields: []string{ref.VibeTags},
	})
	if err != nil {
		return nil, err
	}

	var endpoints []pairing.Endpoint
	for _, item := range matched {
		for _, contentType := range multival.ToStringList(item.ContentType) {
			endpointRef := pairing.Ref(contentType)
			if endpointRef.IsCatalogItem() {
				endpoints = append(endpoints, pairing.Endpoint{ID: item.ID, Ref: endpointRef})
			}
		}
	}
	return endpoints, nil
}
