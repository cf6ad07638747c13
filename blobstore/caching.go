package blobstore

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a BlobStore with a read-through blob cache.
// Concurrent Gets for the same uncached blob are collapsed into a single
// fetch from the inner store. Put and Delete invalidate the cached entry
// before hitting the inner store.
//
// Snapshots are immutable once written, so cached entries never go stale
// as long as all writers go through the same CachingStore.
type CachingStore struct {
	inner BlobStore
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewCachingStore creates a CachingStore over inner.
func NewCachingStore(inner BlobStore) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Put invalidates the cache entry and writes through.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	return s.inner.Put(ctx, name, data)
}

// Get returns the cached content or fetches it from the inner store.
// The returned slice is a copy.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return cloneBytes(data), nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		data, err := s.inner.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[name] = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneBytes(v.([]byte)), nil
}

// Delete invalidates the cache entry and deletes from the inner store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	return s.inner.Delete(ctx, name)
}

// List is a pass-through; listings are not cached.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
