package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/websudos/phantom/query"
)

// PreparedCache is an LRU of prepared blocks keyed by the fingerprint
// of their rendered statement text. It sits in the connector layer;
// the builder core never consults it.
type PreparedCache struct {
	cache *lru.Cache[uint64, *query.PreparedBlock]
	mu    sync.RWMutex
}

func NewPreparedCache(size int) *PreparedCache {
	c, _ := lru.New[uint64, *query.PreparedBlock](size)
	return &PreparedCache{cache: c}
}

func (p *PreparedCache) Get(key uint64) (*query.PreparedBlock, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cache.Get(key)
}

func (p *PreparedCache) Add(key uint64, blk *query.PreparedBlock) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache.Add(key, blk)
}

// GetOrDerive returns the cached block, or derives, stores and returns
// a fresh one. Derivation errors are not cached.
func (p *PreparedCache) GetOrDerive(key uint64, derive func() (*query.PreparedBlock, error)) (*query.PreparedBlock, error) {
	// Fast path under the read lock.
	p.mu.RLock()
	if blk, ok := p.cache.Get(key); ok {
		p.mu.RUnlock()
		return blk, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring the write lock.
	if blk, ok := p.cache.Get(key); ok {
		return blk, nil
	}

	blk, err := derive()
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, blk)
	return blk, nil
}

func (p *PreparedCache) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cache.Len()
}

func (p *PreparedCache) Purge() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache.Purge()
}
