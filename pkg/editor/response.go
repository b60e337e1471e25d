package editor

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the envelope of every editor API response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// HTTPError pairs a status code with a stable error code.
type HTTPError struct {
	Status int
	Code   string
}

func (e HTTPError) Error() string { return e.Code }

var (
	errBadRequest    = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	errNotFound      = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	errUnprocessable = HTTPError{Status: http.StatusUnprocessableEntity, Code: "invalid_argument"}
	errInternal      = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error"}
)

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, JSONResponse{Data: data})
}

// writeError maps package errors to HTTP errors. Internal errors hide their message.
func writeError(w http.ResponseWriter, err error) {
	httpErr := toHTTPError(err)
	message := err.Error()
	if httpErr == errInternal {
		message = http.StatusText(http.StatusInternalServerError)
	}
	writeJSON(w, httpErr.Status, JSONResponse{Error: &ErrorDetail{Code: httpErr.Code, Message: message}})
}

func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, ErrInvalidPath), errors.Is(err, ErrBaseNotFound):
		return errNotFound
	case errors.Is(err, ErrInvalidArgument):
		return errUnprocessable
	default:
		return errInternal
	}
}
