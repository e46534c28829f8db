package api

import (
	"errors"
	"net/http"

	"github.com/mnavarrocarter/rest-bundle/internal/api/shared"
	"github.com/mnavarrocarter/rest-bundle/internal/service/auth"
	"github.com/mnavarrocarter/rest-bundle/internal/store"
	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrPostNotFound),
		errors.Is(err, store.ErrCommentNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrSlugExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, transform.ErrMalformedSelection),
		errors.Is(err, transform.ErrUndeclaredInclude),
		errors.Is(err, transform.ErrMaxDepthExceeded),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// ErrUnknownKind means a transformer was never registered for a kind the
	// handlers hand out, which is a wiring bug, not a client mistake.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrSlugExists):
		return "Slug already exists"

	case errors.Is(err, transform.ErrMalformedSelection):
		return "Malformed include expression"

	case errors.Is(err, transform.ErrUndeclaredInclude):
		return "Unknown include"

	case errors.Is(err, transform.ErrMaxDepthExceeded):
		return "Include expression is too deep"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an internal error to its status code and safe message
// and writes the response. An optional override message replaces the mapped
// one when non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
