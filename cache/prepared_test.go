package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/websudos/phantom/query"
	"github.com/websudos/phantom/utils"
)

func TestGetOrDeriveCachesOnce(t *testing.T) {
	c := NewPreparedCache(8)
	key := utils.U64("UPDATE ks.t SET name = ? WHERE id = ?")

	calls := 0
	derive := func() (*query.PreparedBlock, error) {
		calls++
		return &query.PreparedBlock{Text: "UPDATE ks.t SET name = ? WHERE id = ?"}, nil
	}

	first, err := c.GetOrDerive(key, derive)
	require.NoError(t, err)
	second, err := c.GetOrDerive(key, derive)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

// The cache hands one block to every caller of the same key, so
// concurrent callers must end up sharing a single derivation and
// executors must treat the shared handle as read-only.
func TestGetOrDeriveSharesOneBlockAcrossGoroutines(t *testing.T) {
	c := NewPreparedCache(8)
	key := utils.U64("UPDATE ks.t SET name = ? WHERE id = ?")

	var calls int32
	blocks := make([]*query.PreparedBlock, 16)
	var wg sync.WaitGroup
	for i := range blocks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			blk, err := c.GetOrDerive(key, func() (*query.PreparedBlock, error) {
				atomic.AddInt32(&calls, 1)
				return &query.PreparedBlock{Text: "UPDATE ks.t SET name = ? WHERE id = ?"}, nil
			})
			assert.NoError(t, err)
			blocks[i] = blk
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, blk := range blocks {
		assert.Same(t, blocks[0], blk)
	}
}

func TestGetOrDeriveDoesNotCacheErrors(t *testing.T) {
	c := NewPreparedCache(8)
	boom := errors.New("prepare failed")

	_, err := c.GetOrDerive(1, func() (*query.PreparedBlock, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	blk, err := c.GetOrDerive(1, func() (*query.PreparedBlock, error) {
		return &query.PreparedBlock{Text: "ok"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", blk.Text)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewPreparedCache(2)
	c.Add(1, &query.PreparedBlock{Text: "a"})
	c.Add(2, &query.PreparedBlock{Text: "b"})
	c.Add(3, &query.PreparedBlock{Text: "c"})

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestPurge(t *testing.T) {
	c := NewPreparedCache(4)
	c.Add(1, &query.PreparedBlock{Text: "a"})
	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestDistinctStatementsHashToDistinctKeys(t *testing.T) {
	a := utils.U64("SELECT * FROM ks.a WHERE id = ?")
	b := utils.U64("SELECT * FROM ks.b WHERE id = ?")
	assert.NotEqual(t, a, b)
}
