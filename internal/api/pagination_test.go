package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		url         string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "/api/posts", 1, defaultPerPage},
		{"explicit values", "/api/posts?page=3&per_page=10", 3, 10},
		{"zero page falls back", "/api/posts?page=0", 1, defaultPerPage},
		{"negative page falls back", "/api/posts?page=-2", 1, defaultPerPage},
		{"non-numeric ignored", "/api/posts?page=abc&per_page=xyz", 1, defaultPerPage},
		{"per_page clamped to max", "/api/posts?per_page=5000", 1, maxPerPage},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tc.url, nil)
			params := parsePageParams(r)
			assert.Equal(t, tc.wantPage, params.page)
			assert.Equal(t, tc.wantPerPage, params.perPage)
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pageParams{page: 1, perPage: 20}.offset())
	assert.Equal(t, 40, pageParams{page: 3, perPage: 20}.offset())
}

func TestBuildPagination(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/posts?page=2&per_page=10&with=author", nil)
	params := pageParams{page: 2, perPage: 10}

	p := buildPagination(r, params, 10, 25)

	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 10, p.Count)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Contains(t, p.Links.Self, "page=2")
	assert.Contains(t, p.Links.Next, "page=3")
	assert.Contains(t, p.Links.Previous, "page=1")
	// Unrelated query parameters survive link rewriting.
	assert.Contains(t, p.Links.Next, "with=author")
}

func TestBuildPaginationEdges(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/posts", nil)

	t.Run("empty collection still has one page", func(t *testing.T) {
		t.Parallel()
		p := buildPagination(r, pageParams{page: 1, perPage: 20}, 0, 0)
		assert.Equal(t, 1, p.TotalPages)
		assert.Empty(t, p.Links.Next)
		assert.Empty(t, p.Links.Previous)
	})

	t.Run("last page has no next link", func(t *testing.T) {
		t.Parallel()
		p := buildPagination(r, pageParams{page: 3, perPage: 10}, 5, 25)
		assert.Empty(t, p.Links.Next)
		assert.Contains(t, p.Links.Previous, "page=2")
	})
}
