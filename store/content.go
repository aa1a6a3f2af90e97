package store

import (
	"context"

	"github.com/Perlera89/campus/core/content"
	"github.com/Perlera89/campus/storage"
)

const contentPartition = "content"

// contentPartial persists only the content type, which discriminates the
// authoring forms and routes without appearing in the URL.
type contentPartial struct {
	ContentType string `json:"contentType"`
}

// ContentStore caches the selected content entry and the active content type.
type ContentStore struct {
	base
	persistence
	state struct {
		Content     content.Content
		ContentType string
	}
}

func NewContentStore(st storage.Storage) *ContentStore {
	return &ContentStore{persistence: persistence{storage: st, partition: contentPartition}}
}

func (s *ContentStore) Load(ctx context.Context) error {
	var partial contentPartial
	if err := s.load(ctx, &partial); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Content = content.Content{}
	s.state.ContentType = partial.ContentType
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *ContentStore) Content() content.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Content
}

func (s *ContentStore) ContentType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ContentType
}

func (s *ContentStore) SetContent(c content.Content) {
	s.mu.Lock()
	s.state.Content = c
	s.mu.Unlock()
	s.notify()
}

// SetContentType switches the authoring flow between MATERIAL and ASSIGNMENT.
func (s *ContentStore) SetContentType(ctx context.Context, typ string) error {
	s.mu.Lock()
	s.state.ContentType = typ
	s.mu.Unlock()
	s.notify()
	return s.save(ctx, contentPartial{ContentType: typ})
}

func (s *ContentStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.state.Content = content.Content{}
	s.state.ContentType = ""
	s.mu.Unlock()
	s.notify()
	return s.clear(ctx)
}
