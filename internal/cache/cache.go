// Package cache implements an in-memory cache region with single-flight
// population and tag-based invalidation. A factory registers tags when it
// populates a key; expiring a tag drops every entry filed under it, however
// many entries share it.
package cache

import (
	"context"
	"sync"
)

// FactoryFunc computes the value for a missing key and returns the tags the
// cached entry should be filed under.
type FactoryFunc[V any] func(ctx context.Context) (V, []string, error)

type call[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Region is a named cache keyed by K. All methods are safe for concurrent
// use. Entries live until a tag they carry is expired; there is no TTL at
// this layer.
type Region[K comparable, V any] struct {
	name string

	mu       sync.Mutex
	entries  map[K]V
	keyTags  map[K][]string
	tagKeys  map[string]map[K]struct{}
	inflight map[K]*call[V]
}

// NewRegion creates an empty cache region. The name labels the region's
// metrics.
func NewRegion[K comparable, V any](name string) *Region[K, V] {
	return &Region[K, V]{
		name:     name,
		entries:  make(map[K]V),
		keyTags:  make(map[K][]string),
		tagKeys:  make(map[string]map[K]struct{}),
		inflight: make(map[K]*call[V]),
	}
}

// GetOrCreateExclusive returns the cached value for key, or runs factory to
// populate it. Concurrent callers for the same key share one factory run and
// observe its value and error; errors are never cached. A waiting caller
// returns early when its context is cancelled.
func (r *Region[K, V]) GetOrCreateExclusive(ctx context.Context, key K, factory FactoryFunc[V]) (V, error) {
	r.mu.Lock()

	if v, ok := r.entries[key]; ok {
		r.mu.Unlock()
		countHit(r.name)

		return v, nil
	}

	if c, ok := r.inflight[key]; ok {
		r.mu.Unlock()

		select {
		case <-c.done:
			return c.val, c.err
		case <-ctx.Done():
			var zero V

			return zero, ctx.Err()
		}
	}

	c := &call[V]{done: make(chan struct{})}
	r.inflight[key] = c
	r.mu.Unlock()

	countMiss(r.name)

	val, tags, err := factory(ctx)

	r.mu.Lock()
	delete(r.inflight, key)

	if err == nil {
		r.store(key, val, tags)
	}
	r.mu.Unlock()

	c.val, c.err = val, err
	close(c.done)

	return val, err
}

// store files key under each tag. Caller holds r.mu.
func (r *Region[K, V]) store(key K, val V, tags []string) {
	r.entries[key] = val
	r.keyTags[key] = tags

	for _, tag := range tags {
		keys, ok := r.tagKeys[tag]
		if !ok {
			keys = make(map[K]struct{})
			r.tagKeys[tag] = keys
		}

		keys[key] = struct{}{}
	}
}

// Expire drops every cached entry filed under tag.
func (r *Region[K, V]) Expire(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys, ok := r.tagKeys[tag]
	if !ok {
		return
	}

	for key := range keys {
		r.evict(key)
	}

	countExpiration(r.name)
}

// evict removes one entry and unfiles it from all its tags. Caller holds r.mu.
func (r *Region[K, V]) evict(key K) {
	delete(r.entries, key)

	for _, tag := range r.keyTags[key] {
		keys := r.tagKeys[tag]
		delete(keys, key)

		if len(keys) == 0 {
			delete(r.tagKeys, tag)
		}
	}

	delete(r.keyTags, key)
}

// Len reports the number of cached entries.
func (r *Region[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
