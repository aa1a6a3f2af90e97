package store

// BreadcrumbItem is one step of the navigation trail.
type BreadcrumbItem struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}

// defaultBreadcrumb is the fixed single-element trail every page unmount
// restores.
func defaultBreadcrumb() []BreadcrumbItem {
	return []BreadcrumbItem{{Label: "Inicio", Link: "/"}}
}

// BreadcrumbStore holds the navigation trail. A pure UI affordance: pages
// build the trail top-down and reset it on unmount. Never persisted.
type BreadcrumbStore struct {
	base
	items []BreadcrumbItem
}

func NewBreadcrumbStore() *BreadcrumbStore {
	return &BreadcrumbStore{items: defaultBreadcrumb()}
}

func (s *BreadcrumbStore) Items() []BreadcrumbItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]BreadcrumbItem, len(s.items))
	copy(items, s.items)
	return items
}

// SetItems replaces the whole trail.
func (s *BreadcrumbStore) SetItems(items []BreadcrumbItem) {
	s.mu.Lock()
	s.items = make([]BreadcrumbItem, len(items))
	copy(s.items, items)
	s.mu.Unlock()
	s.notify()
}

// AddItem appends one step to the trail.
func (s *BreadcrumbStore) AddItem(item BreadcrumbItem) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.notify()
}

// RemoveLastItem drops the deepest step. The trail never shrinks below empty.
func (s *BreadcrumbStore) RemoveLastItem() {
	s.mu.Lock()
	if len(s.items) > 0 {
		s.items = s.items[:len(s.items)-1]
	}
	s.mu.Unlock()
	s.notify()
}

// ResetItems restores the fixed default trail regardless of prior state.
func (s *BreadcrumbStore) ResetItems() {
	s.mu.Lock()
	s.items = defaultBreadcrumb()
	s.mu.Unlock()
	s.notify()
}
