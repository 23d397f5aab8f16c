package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGet(t *testing.T, db ReadOnlyKVStore, key []byte) []byte {
	t.Helper()
	val, err := db.Get(key)
	require.NoError(t, err)
	return val
}

func mustHas(t *testing.T, db ReadOnlyKVStore, key []byte) bool {
	t.Helper()
	ok, err := db.Has(key)
	require.NoError(t, err)
	return ok
}

// TestBTreeCacheGetSet does basic sanity checks on our cache.
//
// Other tests should handle deletes, setting same value,
// and general fuzzing.
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are written to it
	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, mustGet(t, base, k))
	assert.False(t, mustHas(t, base, k))
	require.NoError(t, base.Set(k, v))
	assert.Equal(t, v, mustGet(t, base, k))
	assert.True(t, mustHas(t, base, k))

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, cache, k))
	assert.True(t, mustHas(t, cache, k))

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, mustGet(t, cache, k2))
	require.NoError(t, cache.Set(k2, v2))
	assert.Equal(t, v2, mustGet(t, cache, k2))
	assert.Nil(t, mustGet(t, base, k2))

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assert.Equal(t, v, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, c2, k))
	assert.Equal(t, v2, mustGet(t, c2, k2))
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	assert.Equal(t, v, mustGet(t, c3, k))
	assert.Equal(t, v2, mustGet(t, c3, k2))
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assert.Nil(t, mustGet(t, base, k))
	assert.Equal(t, v2, mustGet(t, base, k2))
	assert.Nil(t, mustGet(t, base, k3))
}

func TestMemStoreIsolation(t *testing.T) {
	db := MemStore()

	k, v := []byte("key"), []byte("value")
	require.NoError(t, db.Set(k, v))

	// a discarded cache leaves the parent untouched
	cache := db.CacheWrap()
	require.NoError(t, cache.Delete(k))
	require.NoError(t, cache.Set([]byte("other"), []byte("data")))
	cache.Discard()

	assert.Equal(t, v, mustGet(t, db, k))
	assert.Nil(t, mustGet(t, db, []byte("other")))

	// a written cache is applied to the parent as one unit
	cache = db.CacheWrap()
	require.NoError(t, cache.Delete(k))
	require.NoError(t, cache.Set([]byte("other"), []byte("data")))
	require.NoError(t, cache.Write())

	assert.Nil(t, mustGet(t, db, k))
	assert.Equal(t, []byte("data"), mustGet(t, db, []byte("other")))
}

func TestDeleteShadowsBackingValue(t *testing.T) {
	db := MemStore()
	k := []byte("gone")
	require.NoError(t, db.Set(k, []byte("soon")))

	cache := db.CacheWrap()
	require.NoError(t, cache.Delete(k))
	assert.Nil(t, mustGet(t, cache, k))
	assert.False(t, mustHas(t, cache, k))
	// parent still holds it until the cache is written
	assert.True(t, mustHas(t, db, k))
}
