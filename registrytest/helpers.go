// Package registrytest provides helpers for testing code built around the
// asset registry.
package registrytest

import (
	"sync"

	"golang.org/x/crypto/ed25519"

	"github.com/unailabrador/assetreg"
	"github.com/unailabrador/assetreg/guid"
	"github.com/unailabrador/assetreg/registry"
)

// NewKey returns a random ed25519 keypair.
func NewKey() (ed25519.PublicKey, ed25519.PrivateKey) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// NewAddress returns an address derived from a fresh ed25519 public key,
// the same way a host environment would derive it for a signer.
func NewAddress() assetreg.Address {
	pub, _ := NewKey()
	return assetreg.NewAddress(pub)
}

// TransferEvent records a single Transferred observer call.
type TransferEvent struct {
	From assetreg.Address
	To   assetreg.Address
	ID   guid.ID
}

// Recorder is an Observer remembering every callback it receives.
type Recorder[T any] struct {
	mu        sync.Mutex
	mints     []registry.Asset[T]
	transfers []TransferEvent
}

var _ registry.Observer[struct{}] = (*Recorder[struct{}])(nil)

func (r *Recorder[T]) Minted(asset registry.Asset[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mints = append(r.mints, asset)
}

func (r *Recorder[T]) Transferred(from, to assetreg.Address, id guid.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers = append(r.transfers, TransferEvent{From: from, To: to, ID: id})
}

// Mints returns a copy of all recorded mint events.
func (r *Recorder[T]) Mints() []registry.Asset[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]registry.Asset[T], len(r.mints))
	copy(out, r.mints)
	return out
}

// Transfers returns a copy of all recorded transfer events.
func (r *Recorder[T]) Transfers() []TransferEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TransferEvent, len(r.transfers))
	copy(out, r.transfers)
	return out
}
