package store

import (
	"context"

	"github.com/Perlera89/campus/core/course"
	"github.com/Perlera89/campus/storage"
)

const coursePartition = "course"

// CourseStore caches the selected course for breadcrumb and navigation
// context. The whole record survives a reload; pages still re-fetch the
// authoritative copy on entry.
type CourseStore struct {
	base
	persistence
	state course.Course
}

func NewCourseStore(st storage.Storage) *CourseStore {
	return &CourseStore{persistence: persistence{storage: st, partition: coursePartition}}
}

func (s *CourseStore) Load(ctx context.Context) error {
	var c course.Course
	if err := s.load(ctx, &c); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = c
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *CourseStore) Course() course.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *CourseStore) SetCourse(ctx context.Context, c course.Course) error {
	s.mu.Lock()
	s.state = c
	s.mu.Unlock()
	s.notify()
	return s.save(ctx, c)
}

func (s *CourseStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.state = course.Course{}
	s.mu.Unlock()
	s.notify()
	return s.clear(ctx)
}
