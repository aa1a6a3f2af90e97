package store

import (
	"context"

	"github.com/Perlera89/campus/core/section"
	"github.com/Perlera89/campus/storage"
)

const sectionPartition = "section"

// sectionPartial persists only the selected section id, so "add content" flows
// know which section to attach to after a reload.
type sectionPartial struct {
	SelectedSectionID string `json:"selectedSectionId"`
}

// SectionStore caches the selected section.
type SectionStore struct {
	base
	persistence
	state struct {
		Section           section.Section
		SelectedSectionID string
	}
}

func NewSectionStore(st storage.Storage) *SectionStore {
	return &SectionStore{persistence: persistence{storage: st, partition: sectionPartition}}
}

func (s *SectionStore) Load(ctx context.Context) error {
	var partial sectionPartial
	if err := s.load(ctx, &partial); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Section = section.Section{}
	s.state.SelectedSectionID = partial.SelectedSectionID
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *SectionStore) Section() section.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Section
}

func (s *SectionStore) SelectedSectionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedSectionID
}

// SelectSection records the section new content attaches to.
func (s *SectionStore) SelectSection(ctx context.Context, sec section.Section) error {
	s.mu.Lock()
	s.state.Section = sec
	s.state.SelectedSectionID = sec.ID
	s.mu.Unlock()
	s.notify()
	return s.save(ctx, sectionPartial{SelectedSectionID: sec.ID})
}

func (s *SectionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.state.Section = section.Section{}
	s.state.SelectedSectionID = ""
	s.mu.Unlock()
	s.notify()
	return s.clear(ctx)
}
