package guid

import (
	"encoding/binary"
	"fmt"

	"github.com/unailabrador/assetreg"
	"github.com/unailabrador/assetreg/errors"
)

// ID names an asset for its entire lifetime.
//
// It is an immutable (creator address, creation number) pair. Two IDs are
// equal iff both fields match.
type ID struct {
	creator     assetreg.Address
	creationNum uint64
}

// Reconstruct is a pure, side-effect-free ID constructor. It can be used to
// rebuild an ID previously produced by an Authority, for example to look up
// an asset.
func Reconstruct(creator assetreg.Address, creationNum uint64) ID {
	return ID{
		creator:     creator,
		creationNum: creationNum,
	}
}

// Creator returns the address this ID was created by.
func (id ID) Creator() assetreg.Address {
	return id.creator
}

// CreationNum returns the sequence number scoped to the creator.
func (id ID) CreationNum() uint64 {
	return id.creationNum
}

// Equals checks if two IDs name the same asset.
func (id ID) Equals(other ID) bool {
	return id.creator.Equals(other.creator) &&
		id.creationNum == other.creationNum
}

// Validate returns an error if the ID was not built from a valid creator
// address.
func (id ID) Validate() error {
	return errors.Wrap(id.creator.Validate(), "creator")
}

// Bytes returns the creator address followed by the big endian encoded
// creation number. Later IDs of the same creator compare greater with
// bytes.Compare.
func (id ID) Bytes() []byte {
	out := make([]byte, 0, len(id.creator)+8)
	out = append(out, id.creator...)
	return appendSequence(out, id.creationNum)
}

func (id ID) String() string {
	return fmt.Sprintf("%s/%d", id.creator, id.creationNum)
}

// Authority allocates fresh IDs. It must never hand out the same
// (creator, creation number) pair twice across its lifetime.
type Authority interface {
	Create(db assetreg.KVStore, creator assetreg.Address) (ID, error)
}

// SequenceAuthority is an Authority that persists one counter per creator
// in the underlying store. Counters start at zero, only grow, and are never
// reused or decremented.
//
// Counter keys follow the pattern:
//
//	_s.<bucket>:<creator>
type SequenceAuthority struct {
	bucket string
}

var _ Authority = SequenceAuthority{}

// NewSequenceAuthority returns an authority scoping its counters with the
// given bucket name.
func NewSequenceAuthority(bucket string) SequenceAuthority {
	return SequenceAuthority{bucket: bucket}
}

// Create allocates the next unused creation number for the creator and
// pairs it with the address.
func (a SequenceAuthority) Create(db assetreg.KVStore, creator assetreg.Address) (ID, error) {
	if err := creator.Validate(); err != nil {
		return ID{}, errors.Wrap(err, "creator")
	}
	key := a.key(creator)
	raw, err := db.Get(key)
	if err != nil {
		return ID{}, errors.Wrap(err, "cannot load sequence")
	}
	next := decodeSequence(raw)
	if err := db.Set(key, appendSequence(nil, next+1)); err != nil {
		return ID{}, errors.Wrap(err, "cannot store sequence")
	}
	return Reconstruct(creator, next), nil
}

// Issued returns how many IDs were created for the given creator so far.
// This method does not modify the authority state.
func (a SequenceAuthority) Issued(db assetreg.ReadOnlyKVStore, creator assetreg.Address) (uint64, error) {
	raw, err := db.Get(a.key(creator))
	if err != nil {
		return 0, errors.Wrap(err, "cannot load sequence")
	}
	return decodeSequence(raw), nil
}

func (a SequenceAuthority) key(creator assetreg.Address) []byte {
	prefix := "_s." + a.bucket + ":"
	return append([]byte(prefix), creator...)
}

func decodeSequence(bz []byte) uint64 {
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func appendSequence(dst []byte, val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return append(dst, bz...)
}
