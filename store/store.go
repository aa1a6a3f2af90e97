// Package store holds the cross-page state containers: explicit state objects
// with synchronous reads, setter actions that notify subscribers, and an
// optional persistence contract binding a partialized slice of the state to a
// named durable-storage partition.
//
// Stores are a cache. Selected entities may go stale relative to the server;
// pages re-fetch before trusting them for mutation. Concurrent writers simply
// overwrite: there is no sequencing or conflict resolution.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/Perlera89/campus/storage"
)

// Subscriber is called after every state change of the store it watches.
type Subscriber func()

type base struct {
	mu     sync.RWMutex
	subs   map[int]Subscriber
	nextID int
}

// Subscribe registers fn and returns its unsubscribe function.
func (b *base) Subscribe(fn Subscriber) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]Subscriber)
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// notify must be called without the lock held.
func (b *base) notify() {
	b.mu.RLock()
	subs := make([]Subscriber, 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// persistence binds a store to its durable partition.
type persistence struct {
	storage   storage.Storage
	partition string
}

// save writes the partialized state. Stores without a backing storage are
// memory-only and save is a no-op.
func (p persistence) save(ctx context.Context, partial interface{}) error {
	if p.storage == nil {
		return nil
	}
	blob, err := json.Marshal(partial)
	if err != nil {
		return errors.Wrapf(err, "partializing %s", p.partition)
	}
	return p.storage.Put(ctx, p.partition, blob)
}

// load restores the partialized state into partial. A partition that has never
// been written leaves partial untouched.
func (p persistence) load(ctx context.Context, partial interface{}) error {
	if p.storage == nil {
		return nil
	}
	blob, err := p.storage.Get(ctx, p.partition)
	if err == storage.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(blob, partial)
}

// clear drops the partition.
func (p persistence) clear(ctx context.Context) error {
	if p.storage == nil {
		return nil
	}
	return p.storage.Delete(ctx, p.partition)
}
