// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package pairing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
	"github.com/ashercourt/marquee/internal/platform/sec"
)

// Handler implements the HTTP layer for pairings.
type Handler struct {
	service *Service
}

// NewHandler constructs a pairing [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the pairing endpoints. All routes sit
// behind the authenticated admin surface; permanent deletes additionally
// require [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createPairing)
	router.Get("/for/{ref}/{id}", handler.listForEndpoint)
	router.Get("/{id}", handler.getPairing)
	router.Post("/{id}/archive", handler.archivePairing)
	router.Post("/{id}/restore", handler.restorePairing)
	router.Delete("/{id}", handler.deletePairing)

	return router
}

/*
POST /api/v1/pairings.

Description: Links two catalog endpoints. Self-pairs and duplicate edges
(either orientation) are rejected before insert.

Response:
  - 201: Pairing
  - 400: VALIDATION_ERROR: Malformed endpoint or self-pair
  - 409: CONFLICT: Edge already exists
*/
func (handler *Handler) createPairing(writer http.ResponseWriter, httpRequest *http.Request) {
	var input CreateInput
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	created, err := handler.service.Create(httpRequest.Context(), input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Created(writer, created)
}

/*
GET /api/v1/pairings/for/{ref}/{id}.

Description: Lists every live pairing touching the endpoint, regardless of
which side it was stored on.
*/
func (handler *Handler) listForEndpoint(writer http.ResponseWriter, httpRequest *http.Request) {
	endpoint := Endpoint{
		ID:  request.Param(httpRequest, "id"),
		Ref: Ref(request.Param(httpRequest, "ref")),
	}

	pairings, err := handler.service.ListForEndpoint(httpRequest.Context(), endpoint)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, pairings)
}

func (handler *Handler) getPairing(writer http.ResponseWriter, httpRequest *http.Request) {
	found, err := handler.service.Get(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) archivePairing(writer http.ResponseWriter, httpRequest *http.Request) {
	archived, err := handler.service.Archive(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, archived)
}

func (handler *Handler) restorePairing(writer http.ResponseWriter, httpRequest *http.Request) {
	restored, err := handler.service.Restore(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, restored)
}

/*
DELETE /api/v1/pairings/{id}.

Description: Permanently removes an edge. Restricted to [sec.RoleAdmin].
*/
func (handler *Handler) deletePairing(writer http.ResponseWriter, httpRequest *http.Request) {
	if _, err := request.RequireRole(httpRequest, sec.RoleAdmin); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.Delete(httpRequest.Context(), request.Param(httpRequest, "id")); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.NoContent(writer)
}
