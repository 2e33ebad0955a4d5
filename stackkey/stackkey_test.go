package stackkey

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/value"
)

// TestOrderPreservation checks that byte-wise comparison of encoded keys
// agrees with value.Compare, across a curated table of adjacent pairs.
func TestOrderPreservation(t *testing.T) {
	// Each value must encode strictly below the next one.
	ladder := []value.Value{
		value.Null(),
		value.Bool(false),
		value.Bool(true),
		value.Int(math.MinInt64),
		value.Int(-1),
		value.Int(0),
		value.Int(1),
		value.Int(math.MaxInt64),
		value.Double(math.Inf(-1)),
		value.Double(-2.5),
		value.Double(math.Copysign(0, -1)),
		value.Double(0),
		value.Double(1e-10),
		value.Double(3.14),
		value.Double(math.Inf(1)),
		value.String(""),
		value.String("a"),
		value.String("a\x00b"),
		value.String("ab"),
		value.String("b"),
		value.Binary(nil),
		value.Binary([]byte{0x00}),
		value.Binary([]byte{0x00, 0x01}),
		value.Binary([]byte{0x01}),
		value.ObjectID(uuid.UUID{}),
		value.ObjectID(uuid.UUID{15: 1}),
	}

	keys := make([][]byte, len(ladder))
	for i, v := range ladder {
		key, err := Encode(v)
		require.NoError(t, err, "encode %v", v)
		keys[i] = key
	}

	for i := range len(ladder) - 1 {
		assert.Negative(t, bytes.Compare(keys[i], keys[i+1]),
			"encode(%v) should sort below encode(%v)", ladder[i], ladder[i+1])
	}
}

// TestOrderPreservationRandom cross-checks encoded byte order against
// value.Compare on random same-type pairs.
func TestOrderPreservationRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	random := func() value.Value {
		switch rng.IntN(4) {
		case 0:
			return value.Int(rng.Int64() - math.MaxInt64/2)
		case 1:
			return value.Double((rng.Float64() - 0.5) * 1e6)
		case 2:
			n := rng.IntN(8)
			b := make([]byte, n)
			for i := range b {
				b[i] = byte(rng.IntN(3)) // skew toward 0x00 to exercise escapes
			}
			return value.Binary(b)
		default:
			n := rng.IntN(8)
			s := make([]byte, n)
			for i := range s {
				s[i] = byte('a' + rng.IntN(3))
			}
			return value.String(string(s))
		}
	}

	for range 2000 {
		a, b := random(), random()
		ka, err := Encode(a)
		require.NoError(t, err)
		kb, err := Encode(b)
		require.NoError(t, err)

		want := value.Compare(a, b)
		got := bytes.Compare(ka, kb)
		require.Equal(t, want, got, "order mismatch: %v vs %v", a, b)
	}
}

// TestPrefixInvariant checks that Encode(A) is a byte prefix of
// Encode(A, B), and that sibling prefixes never swallow each other.
func TestPrefixInvariant(t *testing.T) {
	prefix, err := Encode(value.String("users"))
	require.NoError(t, err)

	full, err := Encode(value.String("users"), value.Int(7))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(full, prefix))

	// "user" is a string prefix of "users" but its encoding must not be a
	// byte prefix of any "users" key: the terminator settles it.
	other, err := Encode(value.String("user"))
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(full, other))

	// A key whose pkey contains 0x00 stays inside the prefix.
	tricky, err := Encode(value.String("users"), value.Binary([]byte{0x00}))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(tricky, prefix))
}

// TestEncodeNaN checks that NaN doubles are rejected with the encoding
// error, not silently encoded.
func TestEncodeNaN(t *testing.T) {
	_, err := Encode(value.Double(math.NaN()))
	require.ErrorIs(t, err, ErrUnencodable)

	_, err = Encode(value.String("ok"), value.Double(math.NaN()))
	require.ErrorIs(t, err, ErrUnencodable)
}

// TestDecodeRoundTrip checks that Decode inverts Encode across all types.
func TestDecodeRoundTrip(t *testing.T) {
	seq := []value.Value{
		value.String("orders"),
		value.Null(),
		value.Bool(true),
		value.Int(-42),
		value.Double(2.75),
		value.String("a\x00b"),
		value.Binary([]byte{0x00, 0xff, 0x00}),
		value.ObjectID(uuid.MustParse("3d7a4f1e-8c2b-4e5a-9d61-0f2b3c4d5e6f")),
	}

	key, err := Encode(seq...)
	require.NoError(t, err)

	got, err := Decode(key)
	require.NoError(t, err)
	require.Len(t, got, len(seq))
	for i := range seq {
		assert.Zero(t, value.Compare(seq[i], got[i]), "index %d: %v != %v", i, seq[i], got[i])
	}
}

// TestDecodeBadKeys checks that corrupt keys fail with ErrBadKey.
func TestDecodeBadKeys(t *testing.T) {
	cases := []struct {
		name string
		key  []byte
	}{
		{"unknown tag", []byte{0xff}},
		{"truncated int", []byte{byte(value.TypeInt), 0x01}},
		{"missing terminator", []byte{byte(value.TypeString), 'a'}},
		{"bad escape", []byte{byte(value.TypeString), 'a', 0x00, 0x07}},
		{"truncated objectid", []byte{byte(value.TypeObjectID), 1, 2, 3}},
	}
	for _, tc := range cases {
		_, err := Decode(tc.key)
		assert.ErrorIs(t, err, ErrBadKey, "%s: key 0x%x", tc.name, tc.key)
	}
}
