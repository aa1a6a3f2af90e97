// Package fetch binds the gateway's request functions to observable
// loading/fetched/data states, with an explicit cache-invalidation contract:
// mutations declare the keys they invalidate and queries subscribe to
// invalidation instead of polling refetch flags.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Key identifies a cached resource: the resource name plus the identifiers and
// pagination values the loader depends on.
type Key string

// NewKey builds a cache key out of a resource name and its parts.
func NewKey(resource string, parts ...interface{}) Key {
	b := strings.Builder{}
	b.WriteString(resource)
	for _, part := range parts {
		b.WriteByte(':')
		b.WriteString(fmt.Sprint(part))
	}
	return Key(b.String())
}

// Loader runs the gateway call behind a query.
type Loader func(ctx context.Context) (interface{}, error)

// Fetcher routes invalidations to the queries subscribed to each key.
type Fetcher struct {
	mu      sync.Mutex
	watches map[Key]map[int]func()
	nextID  int
}

func NewFetcher() *Fetcher {
	return &Fetcher{watches: make(map[Key]map[int]func())}
}

func (f *Fetcher) watch(key Key, fn func()) (unwatch func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.watches[key] == nil {
		f.watches[key] = make(map[int]func())
	}
	id := f.nextID
	f.nextID++
	f.watches[key][id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.watches[key], id)
	}
}

// Invalidate re-runs every query subscribed to the given keys.
func (f *Fetcher) Invalidate(keys ...Key) {
	var fns []func()
	f.mu.Lock()
	for _, key := range keys {
		for _, fn := range f.watches[key] {
			fns = append(fns, fn)
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Query exposes one gateway call as observable state.
type Query struct {
	f        *Fetcher
	loader   Loader
	fallback interface{}
	enabled  func() bool

	mu      sync.Mutex
	key     Key
	unwatch func()
	loading bool
	fetched bool
	data    interface{}
	err     error
}

// QueryOption tweaks a query at construction.
type QueryOption func(*Query)

// WithEnabled gates the loader off until the condition holds, e.g. while a
// required identifier is still unknown.
func WithEnabled(cond func() bool) QueryOption {
	return func(q *Query) { q.enabled = cond }
}

// NewQuery builds a query for key. Data reports fallback until a load settles.
// The query re-runs whenever its key is invalidated.
func (f *Fetcher) NewQuery(key Key, fallback interface{}, loader Loader, opts ...QueryOption) *Query {
	q := &Query{
		f:        f,
		loader:   loader,
		fallback: fallback,
		key:      key,
		data:     fallback,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.unwatch = f.watch(key, func() { q.Refetch(context.Background()) })
	return q
}

// Run loads the data unless the query is gated off.
func (q *Query) Run(ctx context.Context) {
	if q.enabled != nil && !q.enabled() {
		return
	}
	q.mu.Lock()
	q.loading = true
	q.mu.Unlock()

	data, err := q.loader(ctx)

	q.mu.Lock()
	q.loading = false
	q.fetched = true
	q.err = err
	if err != nil || data == nil {
		q.data = q.fallback
	} else {
		q.data = data
	}
	q.mu.Unlock()
}

// Refetch re-runs the loader explicitly.
func (q *Query) Refetch(ctx context.Context) { q.Run(ctx) }

// SetKey re-keys the query and re-runs it when the key actually changed.
func (q *Query) SetKey(ctx context.Context, key Key) {
	q.mu.Lock()
	if key == q.key {
		q.mu.Unlock()
		return
	}
	q.key = key
	q.fetched = false
	q.data = q.fallback
	unwatch := q.unwatch
	q.mu.Unlock()

	if unwatch != nil {
		unwatch()
	}
	q.unwatch = q.f.watch(key, func() { q.Refetch(context.Background()) })
	q.Run(ctx)
}

// Close unsubscribes the query from invalidation. Outstanding loads are not
// canceled; cancellation travels through the caller's context.
func (q *Query) Close() {
	q.mu.Lock()
	unwatch := q.unwatch
	q.unwatch = nil
	q.mu.Unlock()
	if unwatch != nil {
		unwatch()
	}
}

func (q *Query) Loading() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loading
}

func (q *Query) Fetched() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.fetched
}

// Data returns the last settled value, or the fallback while nothing has
// settled or the last load failed.
func (q *Query) Data() interface{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.data
}

func (q *Query) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}
