/*
Package req provides helpers for parsing portal request bodies.

Browser shells submit forms either as JSON or as URL-encoded form posts; both are bound into the
same input structs so every form controller sees one shape.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"innoevent/internal/pkg/errs"
)

// MaxBodySize caps every request body the portal reads (1 MB).
const MaxBodySize int64 = 1 << 20

// BindJSON decodes the JSON request body into dst, rejecting unknown fields and trailing data.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// BindForm parses a URL-encoded body and passes the values to fill, which copies
// them into the destination struct.
func BindForm(w http.ResponseWriter, r *http.Request, fill func(get func(key string) string)) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	if err := r.ParseForm(); err != nil {
		return errs.NewError(errs.ErrFormParseFailed)
	}

	fill(r.PostForm.Get)
	return nil
}

// IsForm reports whether the request body is URL-encoded form data.
func IsForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}
