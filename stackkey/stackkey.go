// Package stackkey builds stacked keys: byte sequences formed by
// concatenating the canonical encodings of an ordered sequence of document
// values. Byte-wise comparison of stacked keys agrees with value.Compare on
// the underlying sequences, and the encoding of a sequence is always a byte
// prefix of the encoding of any extension of that sequence. Those two
// properties are what make prefix-scoped range scans over a flat keyspace
// correct.
package stackkey

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/quilldb/quill/value"
)

const signBit = 1 << 63

// Encode returns the stacked key for the given value sequence.
func Encode(vs ...value.Value) (key []byte, err error) {
	for _, v := range vs {
		key, err = Append(key, v)
		if err != nil {
			return nil, err
		}
	}
	return key, nil
}

// Append appends the canonical encoding of a single value to dst.
//
// Each encoding starts with the value's type tag and is self-terminating, so
// no value's encoding is a proper byte prefix of a different value's
// encoding. Variable-length payloads (string, binary) escape 0x00 content
// bytes as 0x00 0x01 and close with 0x00 0x00, which keeps the terminator
// below any continuation byte.
func Append(dst []byte, v value.Value) ([]byte, error) {
	t := v.Type()
	switch t {
	case value.TypeNull:
		return append(dst, byte(t)), nil

	case value.TypeBool:
		if v.BoolVal() {
			return append(dst, byte(t), 1), nil
		}
		return append(dst, byte(t), 0), nil

	case value.TypeInt:
		dst = append(dst, byte(t))
		return binary.BigEndian.AppendUint64(dst, uint64(v.Int64())^signBit), nil

	case value.TypeDouble:
		f := v.Float64()
		if math.IsNaN(f) {
			return nil, fmt.Errorf("%w: NaN double", ErrUnencodable)
		}
		bits := math.Float64bits(f)
		if bits&signBit != 0 {
			bits = ^bits
		} else {
			bits |= signBit
		}
		dst = append(dst, byte(t))
		return binary.BigEndian.AppendUint64(dst, bits), nil

	case value.TypeString:
		dst = append(dst, byte(t))
		return appendEscaped(dst, []byte(v.Str())), nil

	case value.TypeBinary:
		dst = append(dst, byte(t))
		return appendEscaped(dst, v.Bytes()), nil

	case value.TypeObjectID:
		id := v.UUID()
		dst = append(dst, byte(t))
		return append(dst, id[:]...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnencodable, t)
}

func appendEscaped(dst, content []byte) []byte {
	for _, c := range content {
		dst = append(dst, c)
		if c == 0x00 {
			dst = append(dst, 0x01)
		}
	}
	return append(dst, 0x00, 0x00)
}
