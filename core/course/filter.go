package course

import "strings"

// Filter narrows a fetched course list down for the catalog views.
// An empty Search or CategoryID matches everything.
type Filter struct {
	Search     string
	CategoryID string
}

func (f Filter) match(c Course) bool {
	if f.CategoryID != "" && c.CategoryID != f.CategoryID {
		return false
	}
	if f.Search != "" {
		title := strings.ToLower(c.Title)
		if !strings.Contains(title, strings.ToLower(strings.TrimSpace(f.Search))) {
			return false
		}
	}
	return true
}

// Split partitions courses into the active and archived lists, applying the
// filter to both. Every course lands in exactly one of the two lists.
func (f Filter) Split(courses []Course) (active, archived []Course) {
	active = make([]Course, 0, len(courses))
	archived = make([]Course, 0)
	for _, c := range courses {
		if !f.match(c) {
			continue
		}
		if c.IsArchived {
			archived = append(archived, c)
		} else {
			active = append(active, c)
		}
	}
	return active, archived
}
