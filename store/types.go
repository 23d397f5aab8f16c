//nolint
package store

import "github.com/unailabrador/assetreg"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = assetreg.ReadOnlyKVStore
type KVStore = assetreg.KVStore
type SetDeleter = assetreg.SetDeleter
type Batch = assetreg.Batch
type CacheableKVStore = assetreg.CacheableKVStore
type KVCacheWrap = assetreg.KVCacheWrap
