package contracts

import "strconv"

// paginationWindow is how many pages are shown on each side of the current one.
const paginationWindow = 2

// PaginationLinks returns the page numbers a datatable shows for meta. The
// first and last pages are always present; a nil entry marks a gap.
//
// For page 6 of 20: 1, nil, 4, 5, 6, 7, 8, nil, 20.
func PaginationLinks(meta DatatableMeta) []*int {
	pages, current := meta.Pages, meta.Page
	if pages <= 0 {
		return nil
	}
	current = max(1, min(current, pages))

	start := max(1, current-paginationWindow)
	end := min(pages, current+paginationWindow)

	var links []*int
	if start > 1 {
		links = append(links, intPtr(1))
		if start > 2 {
			links = append(links, nil)
		}
	}
	for p := start; p <= end; p++ {
		links = append(links, intPtr(p))
	}
	if end < pages {
		if end < pages-1 {
			links = append(links, nil)
		}
		links = append(links, intPtr(pages))
	}
	return links
}

// PaginationButtons renders PaginationLinks as buttons, including previous
// and next controls.
func PaginationButtons(meta DatatableMeta) []DatatablePaginationLink {
	links := PaginationLinks(meta)
	if links == nil {
		return nil
	}

	buttons := make([]DatatablePaginationLink, 0, len(links)+2)
	buttons = append(buttons, DatatablePaginationLink{Title: "Prev", IsDisabled: meta.Page <= 1})
	for _, p := range links {
		if p == nil {
			buttons = append(buttons, DatatablePaginationLink{Title: "...", IsDisabled: true})
			continue
		}
		buttons = append(buttons, DatatablePaginationLink{Title: strconv.Itoa(*p), IsActive: *p == meta.Page})
	}
	buttons = append(buttons, DatatablePaginationLink{Title: "Next", IsDisabled: meta.Page >= meta.Pages})
	return buttons
}

func intPtr(v int) *int {
	return &v
}
