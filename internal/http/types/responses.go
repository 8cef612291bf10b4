// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/tenant-access/internal/types"
)

// ErrorResponse is the standard json body of every failed request.
type ErrorResponse struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Invalid []string `json:"invalid,omitempty"`
}

// Response is the standard json envelope of successful requests.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// HTTPStatusFromError maps the error taxonomy onto http status codes.
func HTTPStatusFromError(err error) int {
	var verr validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, types.ErrValidation), errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, types.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the body for err, internal failures never leak their message.
func NewErrorResponse(err error) ErrorResponse {
	status := HTTPStatusFromError(err)

	r := ErrorResponse{Status: status, Message: err.Error()}
	switch status {
	case http.StatusInternalServerError:
		r.Message = http.StatusText(status)
	case http.StatusServiceUnavailable:
		r.Message = "store unavailable, retry later"
	}

	var verr *types.ValidationError
	if errors.As(err, &verr) {
		r.Invalid = verr.Invalid
	}

	return r
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}

func WriteError(w http.ResponseWriter, err error) {
	r := NewErrorResponse(err)
	WriteJSON(w, r.Status, r)
}

// WriteErrorMessage writes a plain error body, used for failures detected by the http layer itself.
func WriteErrorMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}
