package contracts

import (
	"fmt"
	"strconv"
)

// PageMeta is the pagination block of a paginated list response.
type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        int    `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          int    `json:"to"`
	Total       int    `json:"total"`
}

// PageLink is one pagination link of a list response. URL is nil for
// disabled controls and gaps.
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Page is one page of a list.
type Page[T any] struct {
	Data  []T        `json:"data"`
	Links []PageLink `json:"links"`
	Meta  PageMeta   `json:"meta"`
}

// Paginated is the full body of a paginated list response.
type Paginated[T any] struct {
	Success bool     `json:"success"`
	Data    *Page[T] `json:"data,omitempty"`
}

// ErrorBody is the body of a failed request.
type ErrorBody struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// NewPageMeta computes the meta block for a page of a list with total items.
// Pages are 1-based; page is clamped into range.
func NewPageMeta(path string, page, perPage, total int) PageMeta {
	if perPage <= 0 {
		perPage = 15
	}
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	meta := PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     perPage,
		Total:       total,
	}
	if total > 0 {
		meta.From = (page-1)*perPage + 1
		meta.To = min(page*perPage, total)
	}
	return meta
}

// Slice returns the items of list on the page described by meta.
func Slice[T any](list []T, meta PageMeta) []T {
	if meta.From == 0 || meta.From > len(list) {
		return []T{}
	}
	return list[meta.From-1 : min(meta.To, len(list))]
}

// NewPageLinks builds the links block for meta: a previous control, the
// windowed page numbers with "..." gaps, and a next control.
func NewPageLinks(meta PageMeta) []PageLink {
	pageURL := func(page int) *string {
		u := fmt.Sprintf("%s?page=%d", meta.Path, page)
		return &u
	}

	links := []PageLink{{Label: "&laquo; Previous"}}
	if meta.CurrentPage > 1 {
		links[0].URL = pageURL(meta.CurrentPage - 1)
	}

	for _, p := range PaginationLinks(DatatableMetaFromPage(meta, 0)) {
		if p == nil {
			links = append(links, PageLink{Label: "..."})
			continue
		}
		links = append(links, PageLink{URL: pageURL(*p), Label: strconv.Itoa(*p), Active: *p == meta.CurrentPage})
	}

	next := PageLink{Label: "Next &raquo;"}
	if meta.CurrentPage < meta.LastPage {
		next.URL = pageURL(meta.CurrentPage + 1)
	}
	return append(links, next)
}
