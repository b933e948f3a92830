// Package pagination turns requested page/pageSize values into safe query
// windows and self-consistent response metadata.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Meta is the pagination block of a list envelope.
type Meta struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// ParseQuery reads page and limit from query parameters. Missing or
// non-numeric values fall back to defaults rather than erroring; pageSize is
// clamped to [1, MaxPageSize].
func ParseQuery(q url.Values) (page, pageSize int) {
	page = DefaultPage
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 1 {
		page = v
	}

	pageSize = DefaultPageSize
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v >= 1 {
		pageSize = v
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize
}

// TotalPages is ceil(total/pageSize), or 0 when there are no items.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Window clamps the requested page against the total count and returns the
// effective page plus its offset. A page past the end lands on the last valid
// page instead of an empty result, so a page number rendered stale by
// concurrent deletions self-corrects.
func Window(page, total, pageSize int) (effectivePage, offset int) {
	if page < 1 {
		page = 1
	}

	totalPages := TotalPages(total, pageSize)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	return page, (page - 1) * pageSize
}

// NewMeta builds the metadata block for an effective page. CurrentPage is 1
// when there are no items at all.
func NewMeta(effectivePage, total, pageSize int) Meta {
	totalPages := TotalPages(total, pageSize)
	if totalPages == 0 {
		effectivePage = 1
	}
	return Meta{
		CurrentPage: effectivePage,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalItems:  total,
	}
}
