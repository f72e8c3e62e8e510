// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
	"github.com/ashercourt/marquee/internal/platform/sec"
)

// Handler implements the HTTP layer for chapters.
type Handler struct {
	service *Service
}

// NewHandler constructs a chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ProjectRoutes returns the project-scoped router, mounted under
// /projects/{projectID}/chapters.
func (handler *Handler) ProjectRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listForProject)
	router.Post("/", handler.createChapter)
	return router
}

// Routes returns the chapter-id router, mounted under /chapters.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.getChapter)
	router.Patch("/{id}", handler.updateChapter)
	router.Post("/{id}/archive", handler.archiveChapter)
	router.Post("/{id}/restore", handler.restoreChapter)
	router.Delete("/{id}", handler.deleteChapter)
	return router
}

/*
GET /api/v1/projects/{projectID}/chapters.

Description: Lists the project's live chapters in number order.
*/
func (handler *Handler) listForProject(writer http.ResponseWriter, httpRequest *http.Request) {
	chapters, err := handler.service.ListForProject(httpRequest.Context(), request.Param(httpRequest, "projectID"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, chapters)
}

func (handler *Handler) createChapter(writer http.ResponseWriter, httpRequest *http.Request) {
	var input CreateInput
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	created, err := handler.service.Create(httpRequest.Context(), request.Param(httpRequest, "projectID"), input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) getChapter(writer http.ResponseWriter, httpRequest *http.Request) {
	found, err := handler.service.Get(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) updateChapter(writer http.ResponseWriter, httpRequest *http.Request) {
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

func (handler *Handler) archiveChapter(writer http.ResponseWriter, httpRequest *http.Request) {
	archived, err := handler.service.Archive(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, archived)
}

func (handler *Handler) restoreChapter(writer http.ResponseWriter, httpRequest *http.Request) {
	restored, err := handler.service.Restore(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, restored)
}

func (handler *Handler) deleteChapter(writer http.ResponseWriter, httpRequest *http.Request) {
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
