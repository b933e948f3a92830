package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gracechapel/api/internal/service"
)

// form wraps a parsed request body so handlers can tell an absent field apart
// from an empty one. Absent fields are "no change" on update.
type form struct {
	values url.Values
	r      *http.Request
	multi  bool
}

// parseRequestForm parses multipart bodies (the usual encoding for uploads)
// and falls back to urlencoded forms for requests without attachments.
func parseRequestForm(r *http.Request, maxMemory int64) (*form, error) {
	err := r.ParseMultipartForm(maxMemory)
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			err = r.ParseForm()
			if err != nil {
				return nil, err
			}
			return &form{values: r.PostForm, r: r}, nil
		}
		return nil, err
	}
	return &form{values: url.Values(r.MultipartForm.Value), r: r, multi: true}, nil
}

// String returns the field value, or nil when the field was absent.
func (f *form) String(key string) *string {
	vals, ok := f.values[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

// Bool returns the parsed field value, or nil when the field was absent.
// Unparsable values read as false.
func (f *form) Bool(key string) *bool {
	s := f.String(key)
	if s == nil {
		return nil
	}
	b := parseFormBool(*s)
	return &b
}

// Flag reports whether the field is present and truthy (sentinel fields like
// removeImage).
func (f *form) Flag(key string) bool {
	b := f.Bool(key)
	return b != nil && *b
}

// File returns the named upload, or nil when it is absent or empty.
func (f *form) File(key string) (*service.Upload, error) {
	if !f.multi {
		return nil, nil
	}

	file, header, err := f.r.FormFile(key)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if header.Size == 0 {
		_ = file.Close()
		return nil, nil
	}

	return &service.Upload{File: file, Header: header}, nil
}

func parseFormBool(s string) bool {
	if s == "on" { // HTML checkbox
		return true
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}

func closeUpload(up *service.Upload) {
	if up != nil {
		_ = up.File.Close()
	}
}

// parseID parses the integer path identifier. Only a non-integer segment is a
// client syntax error; well-formed identifiers with no row, zero and negatives
// included, fall through to the not-found path.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
