package registry

import (
	"encoding/json"

	"github.com/unailabrador/assetreg/errors"
)

// Codec turns a caller supplied payload into bytes and back. The registry
// imposes no other requirement on the payload type: it is never compared,
// ordered or inspected.
type Codec[T any] interface {
	Marshal(payload T) ([]byte, error)
	Unmarshal(raw []byte) (T, error)
}

// JSONCodec stores payloads as JSON. It works for any payload type the
// encoding/json package can handle and is the codec of choice unless the
// caller has a wire format of their own.
type JSONCodec[T any] struct{}

var _ Codec[struct{}] = JSONCodec[struct{}]{}

func (JSONCodec[T]) Marshal(payload T) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "cannot serialize payload")
	}
	return raw, nil
}

func (JSONCodec[T]) Unmarshal(raw []byte) (T, error) {
	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, errors.Wrap(err, "cannot deserialize payload")
	}
	return payload, nil
}
