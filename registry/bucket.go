package registry

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/unailabrador/assetreg"
	"github.com/unailabrador/assetreg/errors"
	"github.com/unailabrador/assetreg/guid"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// CollectionBucket is the per owner store of assets of one type.
//
// Each owner gets at most one collection per bucket, persisted as a single
// record under the key <bucket>:<owner>. Lookup inside a collection is a
// linear scan; collections are expected to be small and no secondary index
// is maintained.
type CollectionBucket[T any] struct {
	name   string
	prefix []byte
	codec  Codec[T]
}

// NewCollectionBucket creates a bucket to store collections of assets
// carrying payloads of type T. The name scopes all keys of this bucket and
// must be a short lowercase word.
func NewCollectionBucket[T any](name string, codec Codec[T]) CollectionBucket[T] {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %s", name))
	}
	if codec == nil {
		panic("collection bucket requires a codec")
	}
	return CollectionBucket[T]{
		name:   name,
		prefix: []byte(name + ":"),
		codec:  codec,
	}
}

// Name returns the bucket name.
func (b CollectionBucket[T]) Name() string {
	return b.name
}

// DBKey returns the storage key used for the given owner's collection.
func (b CollectionBucket[T]) DBKey(owner assetreg.Address) []byte {
	return append(b.prefix, owner...)
}

// Initialize creates an empty collection for the owner if there is none.
// It is idempotent: a second call is a no-op, not an error.
func (b CollectionBucket[T]) Initialize(db assetreg.KVStore, owner assetreg.Address) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	switch ok, err := db.Has(b.DBKey(owner)); {
	case err != nil:
		return errors.Wrap(err, "cannot check collection")
	case ok:
		return nil
	}
	return b.save(db, owner, &storedCollection{})
}

// Exists returns true if the owner has an initialized collection, even an
// empty one.
func (b CollectionBucket[T]) Exists(db assetreg.ReadOnlyKVStore, owner assetreg.Address) (bool, error) {
	ok, err := db.Has(b.DBKey(owner))
	if err != nil {
		return false, errors.Wrap(err, "cannot check collection")
	}
	return ok, nil
}

// IndexOf scans the owner's collection for the given identifier and returns
// the position of the first match. The second return value is false if no
// asset with that identifier is present.
func (b CollectionBucket[T]) IndexOf(db assetreg.ReadOnlyKVStore, owner assetreg.Address, id guid.ID) (int, bool, error) {
	col, err := b.load(db, owner)
	if err != nil {
		return -1, false, err
	}
	if col == nil {
		return -1, false, errors.Wrapf(ErrCollectionNotPublished, "owner %s", owner)
	}
	pos := col.indexOf(id)
	return pos, pos >= 0, nil
}

// Insert appends the asset to the owner's collection, preserving insertion
// order. It fails with ErrCollectionNotPublished if the owner has no
// collection and with ErrDuplicateIdentifier if an asset with the same
// identifier is already held.
func (b CollectionBucket[T]) Insert(db assetreg.KVStore, owner assetreg.Address, asset Asset[T]) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	col, err := b.load(db, owner)
	if err != nil {
		return err
	}
	if col == nil {
		return errors.Wrapf(ErrCollectionNotPublished, "owner %s", owner)
	}
	if col.indexOf(asset.ID()) >= 0 {
		return errors.Wrapf(ErrDuplicateIdentifier, "%s", asset.ID())
	}

	payload, err := b.codec.Marshal(asset.Payload())
	if err != nil {
		return err
	}
	col.Assets = append(col.Assets, storedAsset{
		Creator:     asset.ID().Creator(),
		CreationNum: asset.ID().CreationNum(),
		Payload:     payload,
		ContentURI:  asset.ContentURI(),
	})
	return b.save(db, owner, col)
}

// Remove takes the asset with the given identifier out of the owner's
// collection and returns it. It fails with ErrCollectionNotPublished if the
// owner has no collection and with ErrIdentifierNotFound if the identifier
// is absent.
//
// The remaining elements are all retained but their order may change.
func (b CollectionBucket[T]) Remove(db assetreg.KVStore, owner assetreg.Address, id guid.ID) (Asset[T], error) {
	var none Asset[T]

	col, err := b.load(db, owner)
	if err != nil {
		return none, err
	}
	if col == nil {
		return none, errors.Wrapf(ErrCollectionNotPublished, "owner %s", owner)
	}
	pos := col.indexOf(id)
	if pos < 0 {
		return none, errors.Wrapf(ErrIdentifierNotFound, "%s", id)
	}

	asset, err := b.restore(col.Assets[pos])
	if err != nil {
		return none, err
	}

	// swap remove, order of the survivors is not promised
	last := len(col.Assets) - 1
	col.Assets[pos] = col.Assets[last]
	col.Assets = col.Assets[:last]

	if err := b.save(db, owner, col); err != nil {
		return none, err
	}
	return asset, nil
}

// Assets returns all assets held by the owner in insertion order.
func (b CollectionBucket[T]) Assets(db assetreg.ReadOnlyKVStore, owner assetreg.Address) ([]Asset[T], error) {
	col, err := b.load(db, owner)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, errors.Wrapf(ErrCollectionNotPublished, "owner %s", owner)
	}
	assets := make([]Asset[T], 0, len(col.Assets))
	for _, sa := range col.Assets {
		asset, err := b.restore(sa)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// Size returns the number of assets in the owner's collection.
func (b CollectionBucket[T]) Size(db assetreg.ReadOnlyKVStore, owner assetreg.Address) (int, error) {
	col, err := b.load(db, owner)
	if err != nil {
		return 0, err
	}
	if col == nil {
		return 0, errors.Wrapf(ErrCollectionNotPublished, "owner %s", owner)
	}
	return len(col.Assets), nil
}

// storedAsset is the persisted form of a single asset.
type storedAsset struct {
	Creator     assetreg.Address `json:"creator"`
	CreationNum uint64           `json:"creation_num"`
	Payload     []byte           `json:"payload,omitempty"`
	ContentURI  []byte           `json:"content_uri,omitempty"`
}

func (sa storedAsset) id() guid.ID {
	return guid.Reconstruct(sa.Creator, sa.CreationNum)
}

// storedCollection is the persisted per owner record.
type storedCollection struct {
	Assets []storedAsset `json:"assets"`
}

func (c *storedCollection) indexOf(id guid.ID) int {
	for i, sa := range c.Assets {
		if sa.id().Equals(id) {
			return i
		}
	}
	return -1
}

// load returns nil without an error when the owner has no collection.
func (b CollectionBucket[T]) load(db assetreg.ReadOnlyKVStore, owner assetreg.Address) (*storedCollection, error) {
	raw, err := db.Get(b.DBKey(owner))
	if err != nil {
		return nil, errors.Wrap(err, "cannot load collection")
	}
	if raw == nil {
		return nil, nil
	}
	var col storedCollection
	if err := json.Unmarshal(raw, &col); err != nil {
		return nil, errors.Wrap(err, "cannot decode collection")
	}
	return &col, nil
}

func (b CollectionBucket[T]) save(db assetreg.KVStore, owner assetreg.Address, col *storedCollection) error {
	raw, err := json.Marshal(col)
	if err != nil {
		return errors.Wrap(err, "cannot encode collection")
	}
	if err := db.Set(b.DBKey(owner), raw); err != nil {
		return errors.Wrap(err, "cannot store collection")
	}
	return nil
}

func (b CollectionBucket[T]) restore(sa storedAsset) (Asset[T], error) {
	payload, err := b.codec.Unmarshal(sa.Payload)
	if err != nil {
		return Asset[T]{}, err
	}
	return newAsset(sa.id(), payload, sa.ContentURI), nil
}
