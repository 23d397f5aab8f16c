package registry

import (
	"github.com/unailabrador/assetreg"
	"github.com/unailabrador/assetreg/errors"
	"github.com/unailabrador/assetreg/guid"
)

// Registry orchestrates minting, publishing and transferring assets on top
// of a collection bucket and an identifier authority.
//
// The registry performs no authentication: the signer passed to an
// operation is trusted to be authenticated by the host environment. Every
// failing call leaves all collections exactly as before the call.
type Registry[T any] struct {
	collections CollectionBucket[T]
	authority   guid.Authority
	observer    Observer[T]
}

// NewRegistry returns a registry operating on the given bucket, with
// identifiers allocated by the given authority.
func NewRegistry[T any](collections CollectionBucket[T], authority guid.Authority) *Registry[T] {
	if authority == nil {
		panic("registry requires an authority")
	}
	return &Registry[T]{
		collections: collections,
		authority:   authority,
	}
}

// WithObserver attaches an observer notified on mint and transfer. It
// returns the registry to allow chaining during setup.
func (r *Registry[T]) WithObserver(o Observer[T]) *Registry[T] {
	r.observer = o
	return r
}

// InitializeCollection creates an empty collection for the signer if there
// is none yet. The call is idempotent. An asset can only be published to an
// initialized collection.
func (r *Registry[T]) InitializeCollection(db assetreg.KVStore, signer assetreg.Address) error {
	return r.collections.Initialize(db, signer)
}

// Mint constructs a new asset carrying a fresh identifier scoped to the
// signer's address. The asset is not placed in any collection; use Publish
// for that. No two Mint calls ever return assets with equal identifiers.
func (r *Registry[T]) Mint(db assetreg.KVStore, signer assetreg.Address, payload T, contentURI []byte) (Asset[T], error) {
	id, err := r.authority.Create(db, signer)
	if err != nil {
		return Asset[T]{}, errors.Wrap(err, "cannot create identifier")
	}
	asset := newAsset(id, payload, contentURI)
	if r.observer != nil {
		r.observer.Minted(asset)
	}
	return asset, nil
}

// Publish inserts the asset into the owner's collection. The owner does not
// have to be the minter. It fails with ErrCollectionNotPublished if the
// owner has no initialized collection and with ErrDuplicateIdentifier if
// the identifier is already present there.
func (r *Registry[T]) Publish(db assetreg.KVStore, owner assetreg.Address, asset Asset[T]) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return r.collections.Insert(db, owner, asset)
}

// Transfer moves the asset named by (creator, creationNum) from the
// signer's collection into the destination owner's collection.
//
// The remove and insert happen as one atomic unit: if the insert phase
// fails, the asset stays in the signer's collection. At every observable
// point the asset is present in exactly one collection.
func (r *Registry[T]) Transfer(db assetreg.CacheableKVStore, signer, to assetreg.Address, creator assetreg.Address, creationNum uint64) error {
	if err := signer.Validate(); err != nil {
		return errors.Wrap(err, "signer")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	id := guid.Reconstruct(creator, creationNum)
	if err := id.Validate(); err != nil {
		return err
	}

	cache := db.CacheWrap()
	asset, err := r.collections.Remove(cache, signer, id)
	if err != nil {
		cache.Discard()
		return err
	}
	if err := r.collections.Insert(cache, to, asset); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot commit transfer")
	}

	if r.observer != nil {
		r.observer.Transferred(signer, to, id)
	}
	return nil
}

// Exists returns true if the owner has an initialized collection.
func (r *Registry[T]) Exists(db assetreg.ReadOnlyKVStore, owner assetreg.Address) (bool, error) {
	return r.collections.Exists(db, owner)
}

// Holdings returns a snapshot of all assets the owner currently holds, in
// insertion order. It is read only and has no side effects.
func (r *Registry[T]) Holdings(db assetreg.ReadOnlyKVStore, owner assetreg.Address) ([]Asset[T], error) {
	return r.collections.Assets(db, owner)
}
