package http

import (
	"encoding/json"
	"net/http"
)

// apiError is the error payload: {"error": "...", "code": 404}.
type apiError struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
}

func (e apiError) Error() string { return e.Message }

var (
	errNotFound         = apiError{Message: "Not found", Code: http.StatusNotFound}
	errPlayerNotFound   = apiError{Message: "Player not found", Code: http.StatusNotFound}
	errMethodNotAllowed = apiError{Message: "Method not allowed", Code: http.StatusMethodNotAllowed}
	errBadBody          = apiError{Message: "Error reading request body", Code: http.StatusBadRequest}
	errServerBusy       = apiError{Message: "Server busy", Code: http.StatusTooManyRequests}
	errTimedOut         = apiError{Message: "Request timed out", Code: http.StatusGatewayTimeout}
)

func internalError(msg string) apiError {
	return apiError{Message: "Internal server error: " + msg, Code: http.StatusInternalServerError}
}

type message struct {
	Message string `json:"message"`
}

// responder writes JSON bodies. In compatibility mode the status line is always
// 200 and the logical code only appears in error payloads.
type responder struct {
	strict bool
}

func (rs responder) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	if rs.strict {
		w.WriteHeader(code)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(v)
}

func (rs responder) ok(w http.ResponseWriter, v any) {
	rs.json(w, http.StatusOK, v)
}

func (rs responder) created(w http.ResponseWriter, v any) {
	rs.json(w, http.StatusCreated, v)
}

func (rs responder) error(w http.ResponseWriter, e apiError) {
	rs.json(w, e.Code, e)
}
