// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package sitecfg

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
	"github.com/ashercourt/marquee/internal/platform/sec"
)

// Handler implements the HTTP layer for site configuration.
type Handler struct {
	service *Service
}

// NewHandler constructs a sitecfg [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the site configuration endpoints,
// mounted under /site.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/footer-links", handler.listFooterLinks)
	router.Post("/footer-links", handler.createFooterLink)
	router.Patch("/footer-links/{id}", handler.updateFooterLink)
	router.Post("/footer-links/{id}/archive", handler.archiveFooterLink)
	router.Delete("/footer-links/{id}", handler.deleteFooterLink)

	router.Get("/pages/{page}", handler.getPageSettings)
	router.Put("/pages/{page}", handler.upsertPageSettings)

	router.Get("/email-capture", handler.getEmailCapture)
	router.Put("/email-capture", handler.upsertEmailCapture)

	router.Get("/shop", handler.getShopConfig)
	router.Put("/shop", handler.upsertShopConfig)

	return router
}

func (handler *Handler) listFooterLinks(writer http.ResponseWriter, httpRequest *http.Request) {
	links, err := handler.service.ListFooterLinks(httpRequest.Context())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, links)
}

func (handler *Handler) createFooterLink(writer http.ResponseWriter, httpRequest *http.Request) {
	var input FooterLinkInput
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	created, err := handler.service.CreateFooterLink(httpRequest.Context(), input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateFooterLink(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload map[string]any
	if err := request.DecodeJSON(httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	updated, err := handler.service.UpdateFooterLink(httpRequest.Context(), request.Param(httpRequest, "id"), payload)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) archiveFooterLink(writer http.ResponseWriter, httpRequest *http.Request) {
	archived, err := handler.service.ArchiveFooterLink(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, archived)
}

func (handler *Handler) deleteFooterLink(writer http.ResponseWriter, httpRequest *http.Request) {
	if _, err := request.RequireRole(httpRequest, sec.RoleAdmin); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.DeleteFooterLink(httpRequest.Context(), request.Param(httpRequest, "id")); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) getPageSettings(writer http.ResponseWriter, httpRequest *http.Request) {
	settings, err := handler.service.GetPageSettings(httpRequest.Context(), request.Param(httpRequest, "page"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, settings)
}

func (handler *Handler) upsertPageSettings(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload map[string]any
	if err := request.DecodeJSON(httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	settings, err := handler.service.UpsertPageSettings(httpRequest.Context(), request.Param(httpRequest, "page"), payload)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, settings)
}

func (handler *Handler) getEmailCapture(writer http.ResponseWriter, httpRequest *http.Request) {
	capture, err := handler.service.GetEmailCapture(httpRequest.Context())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, capture)
}

func (handler *Handler) upsertEmailCapture(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload map[string]any
	if err := request.DecodeJSON(httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	capture, err := handler.service.UpsertEmailCapture(httpRequest.Context(), payload)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, capture)
}

func (handler *Handler) getShopConfig(writer http.ResponseWriter, httpRequest *http.Request) {
	config, err := handler.service.GetShopConfig(httpRequest.Context())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, config)
}

func (handler *Handler) upsertShopConfig(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload map[string]any
	if err := request.DecodeJSON(httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	config, err := handler.service.UpsertShopConfig(httpRequest.Context(), payload)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, config)
}
