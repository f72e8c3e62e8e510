// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
	"github.com/ashercourt/marquee/internal/platform/sec"
	"github.com/ashercourt/marquee/pkg/convert"
	"github.com/ashercourt/marquee/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog items.
type Handler struct {
	service *Service
}

// NewHandler constructs a project [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog item endpoints. The whole
// surface is the authenticated admin dashboard; permanent deletes (archive
// view only) additionally require [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProjects)
	router.Post("/", handler.createProject)
	router.Get("/archived", handler.listArchived)
	router.Get("/search-by-tag", handler.searchByTag)
	router.Get("/{id}", handler.getProject)
	router.Patch("/{id}", handler.updateProject)
	router.Post("/{id}/archive", handler.archiveProject)
	router.Post("/{id}/restore", handler.restoreProject)
	router.Delete("/{id}", handler.deleteProject)

	return router
}

/*
GET /api/v1/projects.

Description: Lists live catalog items, newest first.

Request:
  - q: string (Free-text search across title, platform, synopsis, tags)
  - content_type: string (Film, TV Show, Song, Audiobook, Comic, Book)
  - status: string (released, coming_soon, archived)
  - platform: string (Exact match)
  - release_year: int
  - limit, page: pagination

Response:
  - 200: []Project with pagination metadata
*/
func (handler *Handler) listProjects(writer http.ResponseWriter, httpRequest *http.Request) {
	paginationParams := pagination.FromRequest(httpRequest)
	queryParams := httpRequest.URL.Query()

	filter := Filter{
		Query:       queryParams.Get("q"),
		ContentType: queryParams.Get("content_type"),
		Status:      queryParams.Get("status"),
		Platform:    queryParams.Get("platform"),
		ReleaseYear: convert.ToIntP(queryParams.Get("release_year")),
	}

	items, total, err := handler.service.List(httpRequest.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/projects/archived.

Description: Lists soft-deleted items for the archive view, where restore
and permanent delete live.
*/
func (handler *Handler) listArchived(writer http.ResponseWriter, httpRequest *http.Request) {
	paginationParams := pagination.FromRequest(httpRequest)

	items, total, err := handler.service.ListArchived(httpRequest.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/projects/search-by-tag?tag=.

Description: Tag-inheritance search. Returns items tagged directly, items
whose pairing carries the tag, and items paired with a tagged entity.
*/
func (handler *Handler) searchByTag(writer http.ResponseWriter, httpRequest *http.Request) {
	results, err := handler.service.SearchByTag(httpRequest.Context(), httpRequest.URL.Query().Get("tag"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, results)
}

/*
GET /api/v1/projects/{id}.

Description: Fetches one catalog item. A missing id is not an error: the
response carries null data with a success envelope.
*/
func (handler *Handler) getProject(writer http.ResponseWriter, httpRequest *http.Request) {
	item, err := handler.service.Get(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) createProject(writer http.ResponseWriter, httpRequest *http.Request) {
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
PATCH /api/v1/projects/{id}.

Description: Dynamic partial update. The body is a free column -> value
map produced by the schema-generated edit form; unknown columns and empty
payloads are rejected.
*/
func (handler *Handler) updateProject(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload map[string]any
	if err := request.DecodeJSON(httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	updated, err := handler.service.Update(httpRequest.Context(), request.Param(httpRequest, "id"), payload)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) archiveProject(writer http.ResponseWriter, httpRequest *http.Request) {
	archived, err := handler.service.Archive(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, archived)
}

func (handler *Handler) restoreProject(writer http.ResponseWriter, httpRequest *http.Request) {
	restored, err := handler.service.Restore(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, restored)
}

/*
DELETE /api/v1/projects/{id}.

Description: Permanent removal, reachable only from the archive view.
Restricted to [sec.RoleAdmin].
*/
func (handler *Handler) deleteProject(writer http.ResponseWriter, httpRequest *http.Request) {
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
