package core

// Pagination is the summary the server returns alongside every list collection.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ListParams are the query parameters accepted by every list endpoint.
type ListParams struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func (p *ListParams) Clean() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// pageWindowDelta is the number of page links shown on each side of the current page.
const pageWindowDelta = 2

// PageWindow is the set of page controls visible for a paginated view.
// Pages is always contiguous and contains Current; an ellipsis appears on a side
// exactly when the window does not touch that end.
type PageWindow struct {
	Current          int
	Pages            []int
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// NewPageWindow computes the visible page controls. A single page needs no
// controls at all: the window is empty.
func NewPageWindow(current, totalPages int) PageWindow {
	if totalPages <= 1 {
		return PageWindow{Current: current}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - pageWindowDelta
	if start < 1 {
		start = 1
	}
	end := current + pageWindowDelta
	if end > totalPages {
		end = totalPages
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return PageWindow{
		Current:          current,
		Pages:            pages,
		LeadingEllipsis:  start > 1,
		TrailingEllipsis: end < totalPages,
	}
}
