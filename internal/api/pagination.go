package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/mnavarrocarter/rest-bundle/internal/transform"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// pageParams holds the normalized pagination inputs of a collection request.
type pageParams struct {
	page    int
	perPage int
}

// offset returns the zero-based item offset of the requested page.
func (p pageParams) offset() int {
	return (p.page - 1) * p.perPage
}

// parsePageParams reads page and per_page from the query string, clamping
// out-of-range values instead of rejecting them.
func parsePageParams(r *http.Request) pageParams {
	params := pageParams{page: 1, perPage: defaultPerPage}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.page = page
		}
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if perPage, err := strconv.Atoi(raw); err == nil && perPage > 0 {
			if perPage > maxPerPage {
				perPage = maxPerPage
			}
			params.perPage = perPage
		}
	}
	return params
}

// buildPagination assembles the pagination block of a collection envelope,
// including self/next/previous links derived from the request URL.
func buildPagination(r *http.Request, params pageParams, count, total int) *transform.Pagination {
	totalPages := total / params.perPage
	if total%params.perPage != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	links := transform.PaginationLinks{
		Self: pageURL(r.URL, params.page),
	}
	if params.page < totalPages {
		links.Next = pageURL(r.URL, params.page+1)
	}
	if params.page > 1 {
		links.Previous = pageURL(r.URL, params.page-1)
	}

	return &transform.Pagination{
		Total:       total,
		Count:       count,
		PerPage:     params.perPage,
		CurrentPage: params.page,
		TotalPages:  totalPages,
		Links:       links,
	}
}

// pageURL rewrites the page query parameter of the request URL, keeping
// every other parameter intact.
func pageURL(u *url.URL, page int) string {
	rewritten := *u
	query := rewritten.Query()
	query.Set("page", strconv.Itoa(page))
	rewritten.RawQuery = query.Encode()
	return rewritten.String()
}
