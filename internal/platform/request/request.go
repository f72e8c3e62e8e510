// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package request

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/ctxutil"
	"github.com/ashercourt/marquee/internal/platform/sec"
	"github.com/ashercourt/marquee/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// It returns validate.ErrInvalidJSON if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Claims extracts the authenticated admin claims from the request context.
//
// Returns nil if the request is not authenticated.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// RequiredClaims ensures the request is authenticated and returns the claims.
//
// Returns apperr.Unauthorized if the request is not authenticated.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

// RequireRole ensures the request is authenticated with at least the target
// role. Permanent deletes require [sec.RoleAdmin]; everything else accepts
// [sec.RoleEditor].
func RequireRole(request *http.Request, target sec.Role) (*sec.AuthClaims, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return nil, err
	}
	if !sec.Role(claims.Role).AtLeast(target) {
		return nil, apperr.Forbidden("Insufficient privileges")
	}
	return claims, nil
}
