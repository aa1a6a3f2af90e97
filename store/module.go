package store

import (
	"context"

	"github.com/Perlera89/campus/core/module"
	"github.com/Perlera89/campus/storage"
)

const modulePartition = "module"

// ModuleStore caches the selected module. Only the module record itself
// survives a reload; the refetch signal is always transient.
type ModuleStore struct {
	base
	persistence
	state struct {
		Module module.Module
		// RefetchModule is a signal slot other components set to force the
		// module page to reload its data. Manual invalidation, not automatic.
		RefetchModule bool
	}
}

func NewModuleStore(st storage.Storage) *ModuleStore {
	return &ModuleStore{persistence: persistence{storage: st, partition: modulePartition}}
}

func (s *ModuleStore) Load(ctx context.Context) error {
	var m module.Module
	if err := s.load(ctx, &m); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Module = m
	s.state.RefetchModule = false
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *ModuleStore) Module() module.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Module
}

func (s *ModuleStore) SetModule(ctx context.Context, m module.Module) error {
	s.mu.Lock()
	s.state.Module = m
	s.mu.Unlock()
	s.notify()
	return s.save(ctx, m)
}

// RequestRefetch flags the module page to reload its data.
func (s *ModuleStore) RequestRefetch() {
	s.mu.Lock()
	s.state.RefetchModule = true
	s.mu.Unlock()
	s.notify()
}

// ConsumeRefetch reports and resets the refetch signal.
func (s *ModuleStore) ConsumeRefetch() bool {
	s.mu.Lock()
	requested := s.state.RefetchModule
	s.state.RefetchModule = false
	s.mu.Unlock()
	if requested {
		s.notify()
	}
	return requested
}

func (s *ModuleStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.state.Module = module.Module{}
	s.state.RefetchModule = false
	s.mu.Unlock()
	s.notify()
	return s.clear(ctx)
}
