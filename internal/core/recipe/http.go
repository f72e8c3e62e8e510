// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package recipe

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
	"github.com/ashercourt/marquee/internal/platform/sec"
	"github.com/ashercourt/marquee/pkg/pagination"
)

// Handler implements the HTTP layer for recipes.
type Handler struct {
	service *Service
}

// NewHandler constructs a recipe [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the recipe endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listRecipes)
	router.Post("/", handler.createRecipe)
	router.Get("/archived", handler.listArchived)
	router.Get("/search-by-tag", handler.searchByTag)
	router.Get("/{id}", handler.getRecipe)
	router.Patch("/{id}", handler.updateRecipe)
	router.Post("/{id}/archive", handler.archiveRecipe)
	router.Post("/{id}/restore", handler.restoreRecipe)
	router.Delete("/{id}", handler.deleteRecipe)

	return router
}

func (handler *Handler) listRecipes(writer http.ResponseWriter, httpRequest *http.Request) {
	paginationParams := pagination.FromRequest(httpRequest)

	recipes, total, err := handler.service.List(httpRequest.Context(),
		httpRequest.URL.Query().Get("q"), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Paginated(writer, recipes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listArchived(writer http.ResponseWriter, httpRequest *http.Request) {
	paginationParams := pagination.FromRequest(httpRequest)

	recipes, total, err := handler.service.ListArchived(httpRequest.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Paginated(writer, recipes, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/recipes/search-by-tag?tag=.

Description: Tag-inheritance search, mirror of the catalog item variant.
*/
func (handler *Handler) searchByTag(writer http.ResponseWriter, httpRequest *http.Request) {
	results, err := handler.service.SearchByTag(httpRequest.Context(), httpRequest.URL.Query().Get("tag"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, results)
}

func (handler *Handler) getRecipe(writer http.ResponseWriter, httpRequest *http.Request) {
	found, err := handler.service.Get(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createRecipe(writer http.ResponseWriter, httpRequest *http.Request) {
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

func (handler *Handler) updateRecipe(writer http.ResponseWriter, httpRequest *http.Request) {
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

func (handler *Handler) archiveRecipe(writer http.ResponseWriter, httpRequest *http.Request) {
	archived, err := handler.service.Archive(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, archived)
}

func (handler *Handler) restoreRecipe(writer http.ResponseWriter, httpRequest *http.Request) {
	restored, err := handler.service.Restore(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, restored)
}

func (handler *Handler) deleteRecipe(writer http.ResponseWriter, httpRequest *http.Request) {
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
