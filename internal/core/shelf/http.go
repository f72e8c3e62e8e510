// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package shelf

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/crud"
	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
	"github.com/ashercourt/marquee/internal/platform/sec"
)

// Handler implements the HTTP layer for content rows.
type Handler struct {
	service *Service
}

// NewHandler constructs a shelf [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the content row endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listRows)
	router.Post("/", handler.createRow)
	router.Post("/reorder", handler.reorderRows)
	router.Get("/{id}", handler.getRow)
	router.Patch("/{id}", handler.updateRow)
	router.Delete("/{id}", handler.deleteRow)
	router.Get("/{id}/items", handler.rowItems)
	router.Post("/{id}/apply", handler.applyTemplate)
	router.Post("/{id}/remove", handler.removeTemplate)

	return router
}

/*
GET /api/v1/projects/{projectID}/shelves.

Description: The active rows the item currently matches, rendered in the
item editor. Registered on the projects subtree by the API composition
layer, which is why this handler is exported.
*/
func (handler *Handler) ShelvesForProject(writer http.ResponseWriter, httpRequest *http.Request) {
	rows, err := handler.service.ShelvesForItem(httpRequest.Context(), request.Param(httpRequest, "projectID"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, rows)
}

/*
GET /api/v1/rows?page=.

Description: Lists rows in display order, optionally for one page.
*/
func (handler *Handler) listRows(writer http.ResponseWriter, httpRequest *http.Request) {
	rows, err := handler.service.List(httpRequest.Context(), Page(httpRequest.URL.Query().Get("page")))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, rows)
}

func (handler *Handler) createRow(writer http.ResponseWriter, httpRequest *http.Request) {
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

// reorderRequest carries the full row ordering, first to last.
type reorderRequest struct {
	IDs []string `json:"ids"`
}

func (handler *Handler) reorderRows(writer http.ResponseWriter, httpRequest *http.Request) {
	var input reorderRequest
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.Reorder(httpRequest.Context(), input.IDs); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) getRow(writer http.ResponseWriter, httpRequest *http.Request) {
	row, err := handler.service.Get(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, row)
}

func (handler *Handler) updateRow(writer http.ResponseWriter, httpRequest *http.Request) {
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

/*
DELETE /api/v1/rows/{id}.

Description: Permanent removal; rows have no archive. Restricted to
[sec.RoleAdmin]. The catalog items the row matched are untouched.
*/
func (handler *Handler) deleteRow(writer http.ResponseWriter, httpRequest *http.Request) {
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

/*
GET /api/v1/rows/{id}/items.

Description: The catalog items currently on the row, truncated to the
row's max_items.
*/
func (handler *Handler) rowItems(writer http.ResponseWriter, httpRequest *http.Request) {
	items, err := handler.service.Items(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, items)
}

/*
POST /api/v1/rows/{id}/apply.

Description: Merges the row's implied fields onto the submitted draft item
payload and returns the merged payload. Nothing is persisted; the editor
applies the result to its form state.
*/
func (handler *Handler) applyTemplate(writer http.ResponseWriter, httpRequest *http.Request) {
	var draft crud.Fields
	if err := request.DecodeJSON(httpRequest, &draft); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	merged, err := handler.service.Apply(httpRequest.Context(), request.Param(httpRequest, "id"), draft)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, merged)
}

/*
POST /api/v1/rows/{id}/remove.

Description: Unsets the row's implied fields on the draft, keeping any
field another active, matching row still claims.
*/
func (handler *Handler) removeTemplate(writer http.ResponseWriter, httpRequest *http.Request) {
	var draft crud.Fields
	if err := request.DecodeJSON(httpRequest, &draft); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	result, err := handler.service.Remove(httpRequest.Context(), request.Param(httpRequest, "id"), draft)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, result)
}
