package registry

import (
	"github.com/unailabrador/assetreg"
	"github.com/unailabrador/assetreg/guid"
)

// Observer is notified after a mint or transfer completed. It is optional
// and purely informational: observers run after all state changes succeeded
// and cannot fail the operation. No delivery guarantee beyond the callback
// itself is provided.
type Observer[T any] interface {
	// Minted is called with the freshly minted asset. The asset is not
	// yet part of any collection.
	Minted(asset Asset[T])

	// Transferred is called after the asset moved between collections.
	Transferred(from, to assetreg.Address, id guid.ID)
}
