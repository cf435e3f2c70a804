// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced by the transport layer itself, before a service is called.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when a request body exceeds the configured
	// limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrNoUserInContext means an authenticated route was reached without
	// the auth middleware in front of it.
	ErrNoUserInContext = errors.New("no user in request context")

	// ErrAPIRouteNotFound is returned for unknown paths under /api.
	ErrAPIRouteNotFound = errors.New("API route not found")
)
