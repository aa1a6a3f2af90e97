package store

import "github.com/Perlera89/campus/core/announcement"

// AnnouncementStore holds the announcement being drafted. Drafts are
// deliberately memory-only: an unfinished announcement does not survive a
// reload.
type AnnouncementStore struct {
	base
	state announcement.NewAnnouncement
}

func NewAnnouncementStore() *AnnouncementStore {
	return &AnnouncementStore{}
}

func (s *AnnouncementStore) Draft() announcement.NewAnnouncement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *AnnouncementStore) SetDraft(d announcement.NewAnnouncement) {
	s.mu.Lock()
	s.state = d
	s.mu.Unlock()
	s.notify()
}

func (s *AnnouncementStore) Clear() {
	s.mu.Lock()
	s.state = announcement.NewAnnouncement{}
	s.mu.Unlock()
	s.notify()
}
