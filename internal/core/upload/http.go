// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

// Package upload exposes the asset upload endpoints backing the dashboard's
// image and audio pickers. All persistence goes through the storage service;
// this layer only handles multipart decoding and key bookkeeping.
package upload

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
	"github.com/ashercourt/marquee/internal/platform/sec"
	"github.com/ashercourt/marquee/internal/platform/storage"
)

// maxUploadBytes caps a single multipart upload (32 MiB covers hero art
// and chapter audio previews).
const maxUploadBytes = 32 << 20

// Handler implements the HTTP layer for asset uploads.
type Handler struct {
	store storage.Service
}

// NewHandler constructs an upload [Handler].
func NewHandler(store storage.Service) *Handler {
	return &Handler{store: store}
}

// Routes returns a [chi.Router] with the upload endpoints. Deleting objects
// is destructive and requires [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.uploadAsset)
	router.Get("/{category}", handler.listAssets)
	router.Delete("/{category}/*", handler.deleteAsset)

	return router
}

/*
POST /api/v1/uploads.

Description: Accepts a multipart form with a 'file' part and a 'category'
field, streams the object to the bucket, and returns its key and public URL.

Response:
  - 201: {key, url}
  - 400: VALIDATION_ERROR: Missing file or unknown category
  - 502: BAD_GATEWAY: Object store unavailable
*/
func (handler *Handler) uploadAsset(writer http.ResponseWriter, httpRequest *http.Request) {
	httpRequest.Body = http.MaxBytesReader(writer, httpRequest.Body, maxUploadBytes)

	file, header, err := httpRequest.FormFile("file")
	if err != nil {
		respond.Error(writer, httpRequest, apperr.ValidationError("A 'file' part is required"))
		return
	}
	defer file.Close()

	category := storage.Category(httpRequest.FormValue("category"))
	if category == "" {
		category = storage.CategoryMisc
	}

	key, publicURL, err := handler.store.Upload(
		httpRequest.Context(),
		category,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.Created(writer, map[string]string{
		"key": key,
		"url": publicURL,
	})
}

/*
GET /api/v1/uploads/{category}.

Description: Lists the object keys under a category prefix, each with its
public URL, for the dashboard's asset picker.
*/
func (handler *Handler) listAssets(writer http.ResponseWriter, httpRequest *http.Request) {
	category := storage.Category(request.Param(httpRequest, "category"))

	keys, err := handler.store.List(httpRequest.Context(), category)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	type asset struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	assets := make([]asset, 0, len(keys))
	for _, key := range keys {
		assets = append(assets, asset{Key: key, URL: handler.store.PublicURL(key)})
	}
	respond.OK(writer, assets)
}

/*
DELETE /api/v1/uploads/{category}/{key}.

Description: Permanently removes an object from the bucket. Idempotent.
*/
func (handler *Handler) deleteAsset(writer http.ResponseWriter, httpRequest *http.Request) {
	if _, err := request.RequireRole(httpRequest, sec.RoleAdmin); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	category := request.Param(httpRequest, "category")
	rest := chi.URLParam(httpRequest, "*")

	key := category + "/" + strings.TrimLeft(rest, "/")
	if strings.Contains(key, "..") {
		respond.Error(writer, httpRequest, apperr.ValidationError("Invalid object key"))
		return
	}

	if err := handler.store.Delete(httpRequest.Context(), key); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.NoContent(writer)
}
