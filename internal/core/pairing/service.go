// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package pairing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/database/schema"
	"github.com/ashercourt/marquee/internal/platform/validate"
	"github.com/ashercourt/marquee/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates pairing creation and traversal.
type Service struct {
	store  *Store
	logger *slog.Logger
}

// NewService constructs a pairing [Service].
func NewService(store *Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateInput is the payload for linking two endpoints.
type CreateInput struct {
	Source      Endpoint `json:"source"`
	Target      Endpoint `json:"target"`
	PairingTags *string  `json:"pairing_tags"`
	Note        *string  `json:"note"`
}

/*
Create links two endpoints.

Description: Validates both endpoints, rejects self-pairing (the same
(id, ref) on both sides), and rejects duplicates in either orientation
before touching the insert path.

Parameters:
  - ctx: context.Context
  - input: CreateInput (both endpoints plus optional tags and note)

Returns:
  - *Pairing: The created edge
  - error: VALIDATION_ERROR for malformed endpoints or a self-pair,
    CONFLICT when the edge already exists in either orientation
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Pairing, error) {
	validator := &validate.Validator{}
	validator.Required("source.id", input.Source.ID).UUID("source.id", input.Source.ID)
	validator.Required("target.id", input.Target.ID).UUID("target.id", input.Target.ID)
	validator.Custom("source.ref", !input.Source.Ref.IsValid(), fmt.Sprintf("unknown ref '%s'", input.Source.Ref))
	validator.Custom("target.ref", !input.Target.Ref.IsValid(), fmt.Sprintf("unknown ref '%s'", input.Target.Ref))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Source == input.Target {
		return nil, apperr.ValidationError("A pairing cannot link an entity to itself")
	}

	duplicate, err := service.store.FindDuplicate(ctx, input.Source, input.Target)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, apperr.Conflict("These entities are already paired")
	}

	ref := schema.CatalogPairing
	fields := crud.Fields{
		ref.ID:        uuidv7.New(),
		ref.SourceID:  input.Source.ID,
		ref.SourceRef: string(input.Source.Ref),
		ref.TargetID:  input.Target.ID,
		ref.TargetRef: string(input.Target.Ref),
	}
	if input.PairingTags != nil {
		fields[ref.PairingTags] = *input.PairingTags
	}
	if input.Note != nil {
		fields[ref.Note] = *input.Note
	}

	created, err := service.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	service.logger.Info("pairing_created",
		slog.String("pairing_id", created.ID),
		slog.String("source_ref", string(created.SourceRef)),
		slog.String("target_ref", string(created.TargetRef)),
	)
	return created, nil
}

// ListForEndpoint returns every live pairing touching the endpoint.
func (service *Service) ListForEndpoint(ctx context.Context, endpoint Endpoint) ([]Pairing, error) {
	if !endpoint.Ref.IsValid() {
		return nil, apperr.ValidationError(fmt.Sprintf("unknown ref '%s'", endpoint.Ref))
	}
	return service.store.ListForEndpoint(ctx, endpoint)
}

// ListMatchingTag returns live pairings whose own tags contain the query.
func (service *Service) ListMatchingTag(ctx context.Context, tag string) ([]Pairing, error) {
	return service.store.ListMatchingTag(ctx, tag)
}

// Get fetches one pairing by id; nil when absent.
func (service *Service) Get(ctx context.Context, id string) (*Pairing, error) {
	return service.store.GetByID(ctx, id)
}

// Archive soft-deletes a pairing. Returns nil when no row matched.
func (service *Service) Archive(ctx context.Context, id string) (*Pairing, error) {
	return service.store.ToggleSoftDelete(ctx, id, true)
}

// Restore brings an archived pairing back. Returns nil when no row matched.
func (service *Service) Restore(ctx context.Context, id string) (*Pairing, error) {
	return service.store.ToggleSoftDelete(ctx, id, false)
}

// Delete removes a pairing permanently. Idempotent.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.store.DeleteByIDPermanent(ctx, id)
}
