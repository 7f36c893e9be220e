/*
Package resp provides helpers for sending the portal's standardized JSON responses.

Every response uses one envelope: a business code, a message, and an optional payload.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"innoevent/internal/pkg/errs"
	"innoevent/internal/pkg/logx"
)

// JSONResponse is the envelope returned for every portal endpoint.
type JSONResponse struct {
	// Code is 0 for success, otherwise an errs code.
	Code int `json:"code"`

	// Message is the user-facing status description or error message.
	Message string `json:"message"`

	// Data is the optional payload.
	Data any `json:"data,omitempty"`
}

// RespondJSON sets the JSON headers and writes payload with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
			"path", r.URL.Path,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	_, _ = w.Write(response)
}

// RespondSuccess sends a 200 OK envelope with data.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, JSONResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// RespondError sends an envelope describing customErr, using its HTTP status.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
	})
}

// RespondErrorData sends an error envelope that still carries data, so a client can redraw
// the page it stays on.
func RespondErrorData(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError, data any) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
		Data:    data,
	})
}
