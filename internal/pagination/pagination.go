// Package pagination builds paginated listing responses with navigation
// links. Pages are 1-indexed; pages past the end yield an empty window
// rather than an error.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// PageFromQuery extracts the page parameter, defaulting to 1. Values below
// 1 or unparseable values fall back to the default.
func PageFromQuery(values url.Values) int {
	raw := values.Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Window returns the offset/limit pair for a page.
func Window(page, perPage int) (offset, limit int) {
	return (page - 1) * perPage, perPage
}

// Links holds optional prev/next navigation links. A nil link serializes
// as JSON null, matching the API contract.
type Links struct {
	Prev *string
	Next *string
}

// BuildLinks computes prev/next links for a page. Prev exists whenever the
// page is past the first, even beyond the last page; next exists only while
// further items remain.
func BuildLinks(baseURL string, page, perPage int, total int64) Links {
	var links Links
	if page > 1 {
		links.Prev = pageLink(baseURL, page-1)
	}
	if int64(page*perPage) < total {
		links.Next = pageLink(baseURL, page+1)
	}
	return links
}

func pageLink(baseURL string, page int) *string {
	link := fmt.Sprintf("%s?page=%d", baseURL, page)
	return &link
}
