// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/ctxutil"
	"github.com/ashercourt/marquee/internal/platform/middleware"
	"github.com/ashercourt/marquee/internal/platform/request"
	"github.com/ashercourt/marquee/internal/platform/respond"
)

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	adminService *Service
}

// NewHandler constructs an admin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{adminService: service}
}

// Routes returns a [chi.Router] with the authentication endpoints.
//
// # Endpoints
//   - POST /login  : Verifies credentials and returns a JWT.
//   - POST /logout : Revokes the current session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())
		r.Post("/logout", handler.logout)
	})

	return router
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /api/v1/auth/login.

Description: Verifies the dashboard admin credentials and returns a signed
access token bound to a fresh session.

Response:
  - 200: LoginSession
  - 401: UNAUTHORIZED: Credentials did not match
*/
func (handler *Handler) login(writer http.ResponseWriter, httpRequest *http.Request) {
	var payload loginRequest
	if err := request.DecodeJSON(httpRequest, &payload); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	session, err := handler.adminService.Login(httpRequest.Context(), LoginInput{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, session)
}

/*
POST /api/v1/auth/logout.

Description: Revokes the session embedded in the caller's JWT. The token
stops working on the next request even though it has not expired.
*/
func (handler *Handler) logout(writer http.ResponseWriter, httpRequest *http.Request) {
	claims := ctxutil.GetAuthUser(httpRequest.Context())
	if claims == nil {
		respond.Error(writer, httpRequest, apperr.Unauthorized("Authentication required"))
		return
	}

	if err := handler.adminService.Logout(httpRequest.Context(), claims.SessionID); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.NoContent(writer)
}
