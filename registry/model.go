package registry

import (
	"github.com/unailabrador/assetreg"
	"github.com/unailabrador/assetreg/errors"
	"github.com/unailabrador/assetreg/guid"
)

// Asset is a uniquely identified value with a caller supplied payload and
// an opaque content pointer (a URI or any byte blob the higher layers care
// about).
//
// Assets are born via Registry.Mint and from then on the identifier and
// content pointer never change. The payload is whatever the caller minted;
// mutating it is a higher layer concern.
type Asset[T any] struct {
	id         guid.ID
	payload    T
	contentURI []byte
}

func newAsset[T any](id guid.ID, payload T, contentURI []byte) Asset[T] {
	return Asset[T]{
		id:         id,
		payload:    payload,
		contentURI: contentURI,
	}
}

// ID returns the globally unique identifier of this asset.
func (a Asset[T]) ID() guid.ID {
	return a.id
}

// Creator returns the address the asset was minted by. It is derived from
// the identifier and never changes, regardless of who holds the asset.
func (a Asset[T]) Creator() assetreg.Address {
	return a.id.Creator()
}

// Payload returns the caller supplied payload.
func (a Asset[T]) Payload() T {
	return a.payload
}

// ContentURI returns the opaque content pointer attached at mint time.
func (a Asset[T]) ContentURI() []byte {
	return a.contentURI
}

// Validate returns an error if the asset was not created through minting.
func (a Asset[T]) Validate() error {
	return errors.Wrap(a.id.Validate(), "id")
}
