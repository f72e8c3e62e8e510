// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package shelf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashercourt/marquee/internal/core/project"
	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
	"github.com/ashercourt/marquee/internal/platform/validate"
	"github.com/ashercourt/marquee/pkg/convert"
	"github.com/ashercourt/marquee/pkg/multival"
	"github.com/ashercourt/marquee/pkg/uuidv7"
)

// NewRepository binds the generic repository to the content row table.
// Rows are hard-delete only, so SoftDelete stays false and the archive
// toggle is rejected by the repository.
func NewRepository(db *pgxpool.Pool) *crud.Repository[ContentRow] {
	ref := schema.LayoutContentRow
	return crud.NewRepository[ContentRow](db, crud.Spec{
		Table:         ref.Table,
		SoftDelete:    false,
		SearchColumns: []string{ref.Label},
	})
}

// writableColumns is the whitelist for dynamic partial updates.
var writableColumns = map[string]bool{
	schema.LayoutContentRow.Label:       true,
	schema.LayoutContentRow.Page:        true,
	schema.LayoutContentRow.FilterType:  true,
	schema.LayoutContentRow.FilterValue: true,
	schema.LayoutContentRow.OrderIndex:  true,
	schema.LayoutContentRow.IsActive:    true,
	schema.LayoutContentRow.MaxItems:    true,
}

// ProjectSource is the slice of the catalog item service the shelf layer
// needs: declarative fetches for row membership and single lookups for
// the shelves-for-item view.
type ProjectSource interface {
	Fetch(ctx context.Context, opts crud.GetOpts) ([]project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
}

// Service orchestrates content row management and membership queries.
type Service struct {
	repo     *crud.Repository[ContentRow]
	projects ProjectSource
	logger   *slog.Logger
}

// NewService constructs a shelf [Service].
func NewService(repo *crud.Repository[ContentRow], projects ProjectSource, logger *slog.Logger) *Service {
	return &Service{repo: repo, projects: projects, logger: logger}
}

// CreateInput is the payload for defining a row.
type CreateInput struct {
	Label       string `json:"label"`
	Page        Page   `json:"page"`
	FilterType  string `json:"filter_type"`
	FilterValue string `json:"filter_value"`
	OrderIndex  int    `json:"order_index"`
	IsActive    bool   `json:"is_active"`
	MaxItems    *int   `json:"max_items"`
}

// Create persists a new content row.
func (service *Service) Create(ctx context.Context, input CreateInput) (*ContentRow, error) {
	ref := schema.LayoutContentRow

	validator := &validate.Validator{}
	validator.Required(ref.Label, input.Label).MaxLen(ref.Label, input.Label, 200)
	validator.Required(ref.Page, string(input.Page))
	validator.Custom(ref.Page, input.Page != "" && !input.Page.IsValid(),
		fmt.Sprintf("unknown page '%s'", input.Page))
	validator.Required(ref.FilterType, input.FilterType)
	if input.MaxItems != nil {
		validator.Custom(ref.MaxItems, *input.MaxItems < 1, "must be at least 1")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	fields := crud.Fields{
		ref.ID:          uuidv7.New(),
		ref.Label:       input.Label,
		ref.Page:        string(input.Page),
		ref.FilterType:  input.FilterType,
		ref.FilterValue: input.FilterValue,
		ref.OrderIndex:  input.OrderIndex,
		ref.IsActive:    input.IsActive,
	}
	if input.MaxItems != nil {
		fields[ref.MaxItems] = *input.MaxItems
	}

	created, err := service.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	service.logger.Info("content_row_created",
		slog.String("row_id", created.ID),
		slog.String("page", string(created.Page)),
		slog.String("filter_type", created.FilterType),
	)
	return created, nil
}

// List returns rows ordered by position, optionally narrowed to one page.
func (service *Service) List(ctx context.Context, page Page) ([]ContentRow, error) {
	ref := schema.LayoutContentRow
	opts := crud.GetOpts{SortBy: ref.OrderIndex}
	if page != "" {
		if !page.IsValid() {
			return nil, apperr.ValidationError(fmt.Sprintf("unknown page '%s'", page))
		}
		opts.Eq = []crud.Cond{{Column: ref.Page, Value: string(page)}}
	}
	return service.repo.Get(ctx, opts)
}

// Get fetches one row by id; nil when absent.
func (service *Service) Get(ctx context.Context, id string) (*ContentRow, error) {
	return service.repo.GetByID(ctx, id)
}

// Update applies a dynamic partial update against the writable whitelist.
func (service *Service) Update(ctx context.Context, id string, payload map[string]any) (*ContentRow, error) {
	ref := schema.LayoutContentRow

	fields := crud.Fields{}
	for column, value := range payload {
		if !writableColumns[column] {
			return nil, apperr.ValidationError(fmt.Sprintf("Column '%s' is not writable", column))
		}
		if column == ref.Page {
			page := Page(fmt.Sprintf("%v", value))
			if !page.IsValid() {
				return nil, apperr.ValidationError(fmt.Sprintf("unknown page '%s'", page))
			}
		}
		fields[column] = value
	}
	return service.repo.UpdateByID(ctx, id, fields)
}

// Reorder rewrites order_index for the given rows, position by position.
// Rows not listed keep their index; last writer wins on conflicts, same
// as every other write in the dashboard.
func (service *Service) Reorder(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return apperr.ValidationError("Reorder payload must not be empty")
	}

	ref := schema.LayoutContentRow
	for index, id := range orderedIDs {
		if _, err := service.repo.UpdateByID(ctx, id, crud.Fields{ref.OrderIndex: index}); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a row permanently. Rows have no archive.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.repo.DeleteByIDPermanent(ctx, id)
}

/*
Items returns the catalog items currently on a row.

Description: The row's filter is translated to a server-side query via
[BuildFetchOpts]. The results pass through a client-side safety net — the
matcher re-checks soft-deletion — and are truncated to max_items. Custom
rows and rows whose filter resolves to nothing yield an empty list; they
are logged, never errors.

Returns:
  - []project.Project: The row's members, newest first
  - error: NOT_FOUND when the row id does not exist
*/
func (service *Service) Items(ctx context.Context, rowID string) ([]project.Project, error) {
	row, err := service.repo.GetByID(ctx, rowID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Content row")
	}

	opts, fetchable := BuildFetchOpts(*row)
	if !fetchable {
		service.logger.Info("content_row_not_fetchable",
			slog.String("row_id", row.ID),
			slog.String("filter_type", row.FilterType),
		)
		return []project.Project{}, nil
	}

	candidates, err := service.projects.Fetch(ctx, opts)
	if err != nil {
		return nil, err
	}

	items := make([]project.Project, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.IsDeleted {
			// The server query already excludes these; keep the guard so a
			// future query change cannot leak archived items onto the site.
			continue
		}
		items = append(items, candidate)
		if row.MaxItems != nil && len(items) >= *row.MaxItems {
			break
		}
	}
	return items, nil
}

/*
ShelvesForItem returns the active rows a catalog item currently matches,
shown in the item editor so curators see placement while editing.

Custom rows are skipped with a log line, matching the fetch direction.
*/
func (service *Service) ShelvesForItem(ctx context.Context, projectID string) ([]ContentRow, error) {
	item, err := service.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("Project")
	}

	ref := schema.LayoutContentRow
	rows, err := service.repo.Get(ctx, crud.GetOpts{
		Eq:     []crud.Cond{{Column: ref.IsActive, Value: true}},
		SortBy: ref.OrderIndex,
	})
	if err != nil {
		return nil, err
	}

	matched := make([]ContentRow, 0, len(rows))
	for _, row := range rows {
		if !IsFetchable(row) {
			service.logger.Info("content_row_skipped",
				slog.String("row_id", row.ID),
				slog.String("filter_type", row.FilterType),
			)
			continue
		}
		if Matches(row, *item) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// # Row Templates

// Apply merges the row's implied fields onto a draft item payload.
func (service *Service) Apply(ctx context.Context, rowID string, draft crud.Fields) (crud.Fields, error) {
	row, err := service.repo.GetByID(ctx, rowID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Content row")
	}
	return ApplyTemplate(*row, draft), nil
}

/*
Remove unsets the row's implied fields on a draft item payload, keeping
any field another active row still claims.

Description: The other rows are recomputed against the draft itself, so
the decision reflects the item as currently edited rather than its stored
state. A flag shared by two matched rows survives removing either one.
*/
func (service *Service) Remove(ctx context.Context, rowID string, draft crud.Fields) (crud.Fields, error) {
	row, err := service.repo.GetByID(ctx, rowID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Content row")
	}

	ref := schema.LayoutContentRow
	active, err := service.repo.Get(ctx, crud.GetOpts{
		Eq: []crud.Cond{{Column: ref.IsActive, Value: true}},
	})
	if err != nil {
		return nil, err
	}

	draftItem := projectFromDraft(draft)
	others := make([]ContentRow, 0, len(active))
	for _, candidate := range active {
		if candidate.ID == row.ID || !IsFetchable(candidate) {
			continue
		}
		if Matches(candidate, draftItem) {
			others = append(others, candidate)
		}
	}

	return RemoveTemplate(*row, draft, others), nil
}

// projectFromDraft builds an in-memory catalog item from a draft payload
// so the matcher can evaluate rows against unsaved edits.
func projectFromDraft(draft crud.Fields) project.Project {
	ref := schema.CatalogProject
	item := project.Project{
		ContentType: multival.ToStringList(draft[ref.ContentType]),
		Status:      multival.ToStringList(draft[ref.Status]),
	}
	item.InHeroCarousel = draftFlag(draft, ref.InHeroCarousel)
	item.InNowPlaying = draftFlag(draft, ref.InNowPlaying)
	item.InComingSoon = draftFlag(draft, ref.InComingSoon)
	item.InStaffPicks = draftFlag(draft, ref.InStaffPicks)
	item.InNewReleases = draftFlag(draft, ref.InNewReleases)
	item.InListenRotation = draftFlag(draft, ref.InListenRotation)
	return item
}

// draftFlag reads a boolean from the loosely typed draft map; form values
// may arrive as real booleans or as strings.
func draftFlag(draft crud.Fields, column string) bool {
	switch value := draft[column].(type) {
	case bool:
		return value
	case string:
		return convert.ToBool(value)
	default:
		return false
	}
}
