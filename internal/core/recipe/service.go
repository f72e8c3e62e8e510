// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package recipe

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
	"github.com/ashercourt/marquee/pkg/slice"
	"github.com/ashercourt/marquee/pkg/uuidv7"
)

// NewRepository binds the generic repository to the recipe table.
func NewRepository(db *pgxpool.Pool) *crud.Repository[Recipe] {
	ref := schema.KitchenRecipe
	return crud.NewRepository[Recipe](db, crud.Spec{
		Table:         ref.Table,
		SoftDelete:    true,
		SearchColumns: []string{ref.Title, ref.FlavorTags},
	})
}

// writableColumns is the whitelist for dynamic partial updates.
var writableColumns = map[string]bool{
	schema.KitchenRecipe.Title:        true,
	schema.KitchenRecipe.FlavorTags:   true,
	schema.KitchenRecipe.HeroImageURL: true,
	schema.KitchenRecipe.Body:         true,
}

// Service orchestrates the business logic for recipes.
type Service struct {
	repo       *crud.Repository[Recipe]
	pairings   *pairing.Service
	tagSources []pairing.TagSource
	logger     *slog.Logger
}

// NewService constructs a recipe [Service]. Tag sources are attached via
// [Service.SetTagSources] after all services exist.
func NewService(repo *crud.Repository[Recipe], pairings *pairing.Service, logger *slog.Logger) *Service {
	return &Service{repo: repo, pairings: pairings, logger: logger}
}

// SetTagSources wires the collections whose tags flow across pairings.
func (service *Service) SetTagSources(sources ...pairing.TagSource) {
	service.tagSources = sources
}

// CreateInput is the payload for adding a recipe.
type CreateInput struct {
	Title        string  `json:"title"`
	FlavorTags   *string `json:"flavor_tags"`
	HeroImageURL *string `json:"hero_image_url"`
	Body         *string `json:"body"`
}

// Create persists a new recipe.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Recipe, error) {
	ref := schema.KitchenRecipe

	validator := &validate.Validator{}
	validator.Required(ref.Title, input.Title).MaxLen(ref.Title, input.Title, 300)
	if input.HeroImageURL != nil && *input.HeroImageURL != "" {
		validator.URL(ref.HeroImageURL, *input.HeroImageURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	fields := crud.Fields{
		ref.ID:    uuidv7.New(),
		ref.Title: input.Title,
	}
	if input.FlavorTags != nil {
		fields[ref.FlavorTags] = *input.FlavorTags
	}
	if input.HeroImageURL != nil {
		fields[ref.HeroImageURL] = *input.HeroImageURL
	}
	if input.Body != nil {
		fields[ref.Body] = *input.Body
	}

	created, err := service.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	service.logger.Info("recipe_created",
		slog.String("recipe_id", created.ID),
		slog.String("title", created.Title),
	)
	return created, nil
}

// List returns live recipes with search and pagination, newest first.
func (service *Service) List(ctx context.Context, query string, limit, offset int) ([]Recipe, int, error) {
	ref := schema.KitchenRecipe
	opts := crud.GetOpts{
		Eq:     []crud.Cond{{Column: ref.IsDeleted, Value: false}},
		Search: query,
		SortBy: ref.CreatedAt,
		Desc:   true,
	}

	total, err := service.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	opts.Limit = limit
	opts.Offset = offset
	recipes, err := service.repo.Get(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListArchived returns soft-deleted recipes for the archive view.
func (service *Service) ListArchived(ctx context.Context, limit, offset int) ([]Recipe, int, error) {
	ref := schema.KitchenRecipe
	opts := crud.GetOpts{
		Eq:     []crud.Cond{{Column: ref.IsDeleted, Value: true}},
		SortBy: ref.CreatedAt,
		Desc:   true,
	}

	total, err := service.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	opts.Limit = limit
	opts.Offset = offset
	recipes, err := service.repo.Get(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Get fetches one recipe by id; nil when absent.
func (service *Service) Get(ctx context.Context, id string) (*Recipe, error) {
	return service.repo.GetByID(ctx, id)
}

// Update applies a dynamic partial update against the writable whitelist.
func (service *Service) Update(ctx context.Context, id string, payload map[string]any) (*Recipe, error) {
	fields := crud.Fields{}
	for column, value := range payload {
		if !writableColumns[column] {
			return nil, apperr.ValidationError(fmt.Sprintf("Column '%s' is not writable", column))
		}
		fields[column] = value
	}
	return service.repo.UpdateByID(ctx, id, fields)
}

// Archive soft-deletes a recipe; nil result when no row matched.
func (service *Service) Archive(ctx context.Context, id string) (*Recipe, error) {
	return service.repo.ToggleSoftDelete(ctx, id, true)
}

// Restore brings an archived recipe back; nil result when no row matched.
func (service *Service) Restore(ctx context.Context, id string) (*Recipe, error) {
	return service.repo.ToggleSoftDelete(ctx, id, false)
}

// Delete removes a recipe permanently. Idempotent.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.repo.DeleteByIDPermanent(ctx, id)
}

// # Tag Inheritance Search

/*
SearchByTag finds recipes carrying a tag, directly or by inheritance.

Description: The mirror image of the catalog item search. Three unioned
sources, de-duplicated by id:

 1. recipes whose own flavor_tags contain the query;
 2. recipes on either end of a pairing whose pairing_tags contain it;
 3. recipes paired with any entity whose own tag field contains it.

Every pairing traversal resolves the far side with
[pairing.OtherEndpoint], since the edge is unordered.
*/
func (service *Service) SearchByTag(ctx context.Context, tag string) ([]Recipe, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, apperr.ValidationError("Search tag must not be empty")
	}

	ref := schema.KitchenRecipe

	direct, err := service.repo.Get(ctx, crud.GetOpts{
		Eq:           []crud.Cond{{Column: ref.IsDeleted, Value: false}},
		Search:       tag,
		SearchFields: []string{ref.FlavorTags},
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

	taggedPairings, err := service.pairings.ListMatchingTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	for _, edge := range taggedPairings {
		for _, endpoint := range []pairing.Endpoint{edge.Source(), edge.Target()} {
			if endpoint.Ref == pairing.RefRecipe {
				collect(endpoint.ID)
			}
		}
	}

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
				if ok && other.Ref == pairing.RefRecipe {
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

	return slice.UniqueBy(results, func(item Recipe) string { return item.ID }), nil
}

// EndpointsMatchingTag implements [pairing.TagSource] for recipes.
func (service *Service) EndpointsMatchingTag(ctx context.Context, tag string) ([]pairing.Endpoint, error) {
	ref := schema.KitchenRecipe
	matched, err := service.repo.Get(ctx, crud.GetOpts{
		Eq:           []crud.Cond{{Column: ref.IsDeleted, Value: false}},
		Search:       tag,
		SearchFields: []string{ref.FlavorTags},
	})
	if err != nil {
		return nil, err
	}

	endpoints := make([]pairing.Endpoint, 0, len(matched))
	for _, item := range matched {
		endpoints = append(endpoints, pairing.Endpoint{ID: item.ID, Ref: pairing.RefRecipe})
	}
	return endpoints, nil
}
