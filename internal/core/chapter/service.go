// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package chapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
	"github.com/ashercourt/marquee/internal/platform/validate"
	"github.com/ashercourt/marquee/pkg/uuidv7"
)

// NewRepository binds the generic repository to the chapter table.
func NewRepository(db *pgxpool.Pool) *crud.Repository[Chapter] {
	ref := schema.CatalogChapter
	return crud.NewRepository[Chapter](db, crud.Spec{
		Table:         ref.Table,
		SoftDelete:    true,
		SearchColumns: []string{ref.Title},
	})
}

// writableColumns is the whitelist for dynamic partial updates.
var writableColumns = map[string]bool{
	schema.CatalogChapter.Title:           true,
	schema.CatalogChapter.Number:          true,
	schema.CatalogChapter.DurationSeconds: true,
	schema.CatalogChapter.AudioURL:        true,
}

// Service orchestrates chapter management for a catalog item.
type Service struct {
	repo   *crud.Repository[Chapter]
	logger *slog.Logger
}

// NewService constructs a chapter [Service].
func NewService(repo *crud.Repository[Chapter], logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateInput is the payload for adding a chapter to a project.
type CreateInput struct {
	Title           string  `json:"title"`
	Number          int     `json:"number"`
	DurationSeconds *int    `json:"duration_seconds"`
	AudioURL        *string `json:"audio_url"`
}

// Create adds a chapter under the given project.
func (service *Service) Create(ctx context.Context, projectID string, input CreateInput) (*Chapter, error) {
	ref := schema.CatalogChapter

	validator := &validate.Validator{}
	validator.Required(ref.ProjectID, projectID).UUID(ref.ProjectID, projectID)
	validator.Required(ref.Title, input.Title).MaxLen(ref.Title, input.Title, 300)
	validator.Custom(ref.Number, input.Number < 0, "must not be negative")
	if input.AudioURL != nil && *input.AudioURL != "" {
		validator.URL(ref.AudioURL, *input.AudioURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	fields := crud.Fields{
		ref.ID:        uuidv7.New(),
		ref.ProjectID: projectID,
		ref.Title:     input.Title,
		ref.Number:    input.Number,
	}
	if input.DurationSeconds != nil {
		fields[ref.DurationSeconds] = *input.DurationSeconds
	}
	if input.AudioURL != nil {
		fields[ref.AudioURL] = *input.AudioURL
	}

	created, err := service.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	service.logger.Info("chapter_created",
		slog.String("chapter_id", created.ID),
		slog.String("project_id", created.ProjectID),
	)
	return created, nil
}

// ListForProject returns the project's live chapters ordered by number.
func (service *Service) ListForProject(ctx context.Context, projectID string) ([]Chapter, error) {
	ref := schema.CatalogChapter
	return service.repo.Get(ctx, crud.GetOpts{
		Eq: []crud.Cond{
			{Column: ref.ProjectID, Value: projectID},
			{Column: ref.IsDeleted, Value: false},
		},
		SortBy: ref.Number,
	})
}

// Get fetches one chapter by id; nil when absent.
func (service *Service) Get(ctx context.Context, id string) (*Chapter, error) {
	return service.repo.GetByID(ctx, id)
}

// Update applies a dynamic partial update against the writable whitelist.
func (service *Service) Update(ctx context.Context, id string, payload map[string]any) (*Chapter, error) {
	fields := crud.Fields{}
	for column, value := range payload {
		if !writableColumns[column] {
			return nil, apperr.ValidationError(fmt.Sprintf("Column '%s' is not writable", column))
		}
		fields[column] = value
	}
	return service.repo.UpdateByID(ctx, id, fields)
}

// Archive soft-deletes a chapter; nil result when no row matched.
func (service *Service) Archive(ctx context.Context, id string) (*Chapter, error) {
	return service.repo.ToggleSoftDelete(ctx, id, true)
}

// Restore brings an archived chapter back; nil result when no row matched.
func (service *Service) Restore(ctx context.Context, id string) (*Chapter, error) {
	return service.repo.ToggleSoftDelete(ctx, id, false)
}

// Delete removes a chapter permanently. Idempotent.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.repo.DeleteByIDPermanent(ctx, id)
}
