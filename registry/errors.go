package registry

import "github.com/unailabrador/assetreg/errors"

// registry reserves 100~109 error codes

var (
	// ErrCollectionNotPublished is returned when the target owner has no
	// initialized collection for the asset type.
	ErrCollectionNotPublished = errors.Register(100, "collection not published")

	// ErrDuplicateIdentifier is returned when an insertion collides with
	// an identifier already present in the target collection.
	ErrDuplicateIdentifier = errors.Register(101, "duplicate identifier")

	// ErrIdentifierNotFound is returned when a removal or lookup target
	// is absent from the collection.
	ErrIdentifierNotFound = errors.Register(102, "identifier not found")
)
