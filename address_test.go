package assetreg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	a := NewAddress([]byte("some public key material"))
	require.NoError(t, a.Validate())
	assert.Len(t, []byte(a), AddressLength)

	// deterministic
	b := NewAddress([]byte("some public key material"))
	assert.True(t, a.Equals(b))

	// different input, different address
	c := NewAddress([]byte("other material"))
	assert.False(t, a.Equals(c))

	assert.Nil(t, NewAddress(nil))
}

func TestAddressValidate(t *testing.T) {
	cases := map[string]struct {
		addr    Address
		wantErr bool
	}{
		"valid address": {
			addr: NewAddress([]byte("foo")),
		},
		"nil address": {
			addr:    nil,
			wantErr: true,
		},
		"too short": {
			addr:    Address{1, 2, 3},
			wantErr: true,
		},
		"too long": {
			addr:    Address(make([]byte, AddressLength+1)),
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.addr.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("unexpected validation result: %+v", err)
			}
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	a := NewAddress([]byte("roundtrip"))

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var b Address
	require.NoError(t, json.Unmarshal(raw, &b))
	assert.True(t, a.Equals(b))
}

func TestParseAddress(t *testing.T) {
	a := NewAddress([]byte("parseme"))

	b32, err := a.Bech32("asset")
	require.NoError(t, err)

	cases := map[string]struct {
		enc     string
		want    Address
		wantErr bool
	}{
		"bare hex": {
			enc:  a.String(),
			want: a,
		},
		"hex with prefix": {
			enc:  "hex:" + a.String(),
			want: a,
		},
		"bech32": {
			enc:  "bech32:" + b32,
			want: a,
		},
		"empty is nil": {
			enc:  "",
			want: nil,
		},
		"not hex": {
			enc:     "zzzz",
			wantErr: true,
		},
		"unknown format": {
			enc:     "base58:whatever",
			wantErr: true,
		},
		"wrong length": {
			enc:     "01020304",
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAddress(tc.enc)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %s", got)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equals(got))
		})
	}
}
