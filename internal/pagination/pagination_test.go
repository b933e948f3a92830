package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", query: "", wantPage: 1, wantPageSize: 10},
		{name: "explicit values", query: "page=2&limit=5", wantPage: 2, wantPageSize: 5},
		{name: "non-numeric falls back", query: "page=abc&limit=xyz", wantPage: 1, wantPageSize: 10},
		{name: "zero falls back", query: "page=0&limit=0", wantPage: 1, wantPageSize: 10},
		{name: "negative falls back", query: "page=-3&limit=-1", wantPage: 1, wantPageSize: 10},
		{name: "limit clamped to max", query: "limit=500", wantPage: 1, wantPageSize: 50},
		{name: "limit at max", query: "limit=50", wantPage: 1, wantPageSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			page, pageSize := ParseQuery(q)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int
		pageSize int
		want     int
	}{
		{total: 0, pageSize: 10, want: 0},
		{total: 1, pageSize: 10, want: 1},
		{total: 10, pageSize: 10, want: 1},
		{total: 11, pageSize: 10, want: 2},
		{total: 12, pageSize: 5, want: 3},
		{total: 50, pageSize: 50, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize), "total=%d pageSize=%d", tt.total, tt.pageSize)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		total      int
		pageSize   int
		wantPage   int
		wantOffset int
	}{
		{name: "first page", page: 1, total: 12, pageSize: 5, wantPage: 1, wantOffset: 0},
		{name: "middle page", page: 2, total: 12, pageSize: 5, wantPage: 2, wantOffset: 5},
		{name: "last page", page: 3, total: 12, pageSize: 5, wantPage: 3, wantOffset: 10},
		{name: "past the end clamps to last page", page: 99, total: 12, pageSize: 5, wantPage: 3, wantOffset: 10},
		{name: "empty set stays on page 1", page: 7, total: 0, pageSize: 10, wantPage: 1, wantOffset: 0},
		{name: "page below 1 floors", page: 0, total: 12, pageSize: 5, wantPage: 1, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, offset := Window(tt.page, tt.total, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 12, 5)
	assert.Equal(t, Meta{CurrentPage: 2, TotalPages: 3, PageSize: 5, TotalItems: 12}, meta)

	// No items: currentPage pins to 1, totalPages 0
	empty := NewMeta(5, 0, 10)
	assert.Equal(t, Meta{CurrentPage: 1, TotalPages: 0, PageSize: 10, TotalItems: 0}, empty)
}
