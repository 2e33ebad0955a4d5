package stackkey

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/quilldb/quill/value"
)

// Decode parses a stacked key back into its value sequence. It is the exact
// inverse of Encode and exists for tooling and diagnostics; the read path
// never needs to decode keys.
func Decode(key []byte) (vs []value.Value, err error) {
	for len(key) > 0 {
		var v value.Value
		v, key, err = take(key)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func take(key []byte) (v value.Value, rest []byte, err error) {
	t := value.Type(key[0])
	rest = key[1:]
	switch t {
	case value.TypeNull:
		return value.Null(), rest, nil

	case value.TypeBool:
		if len(rest) < 1 {
			return v, nil, truncated(t)
		}
		return value.Bool(rest[0] != 0), rest[1:], nil

	case value.TypeInt:
		if len(rest) < 8 {
			return v, nil, truncated(t)
		}
		u := binary.BigEndian.Uint64(rest) ^ signBit
		return value.Int(int64(u)), rest[8:], nil

	case value.TypeDouble:
		if len(rest) < 8 {
			return v, nil, truncated(t)
		}
		bits := binary.BigEndian.Uint64(rest)
		if bits&signBit != 0 {
			bits &^= signBit
		} else {
			bits = ^bits
		}
		return value.Double(math.Float64frombits(bits)), rest[8:], nil

	case value.TypeString:
		content, rest, err := takeEscaped(rest, t)
		if err != nil {
			return v, nil, err
		}
		return value.String(string(content)), rest, nil

	case value.TypeBinary:
		content, rest, err := takeEscaped(rest, t)
		if err != nil {
			return v, nil, err
		}
		return value.Binary(content), rest, nil

	case value.TypeObjectID:
		if len(rest) < 16 {
			return v, nil, truncated(t)
		}
		var id uuid.UUID
		copy(id[:], rest)
		return value.ObjectID(id), rest[16:], nil
	}
	return v, nil, fmt.Errorf("%w: unknown tag 0x%02x", ErrBadKey, key[0])
}

func takeEscaped(key []byte, t value.Type) (content, rest []byte, err error) {
	var buf bytes.Buffer
	for i := 0; i < len(key); {
		c := key[i]
		if c != 0x00 {
			buf.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(key) {
			return nil, nil, truncated(t)
		}
		switch key[i+1] {
		case 0x00:
			return buf.Bytes(), key[i+2:], nil
		case 0x01:
			buf.WriteByte(0x00)
			i += 2
		default:
			return nil, nil, fmt.Errorf("%w: bad escape 0x%02x in %s", ErrBadKey, key[i+1], t)
		}
	}
	return nil, nil, truncated(t)
}

func truncated(t value.Type) error {
	return fmt.Errorf("%w: truncated %s", ErrBadKey, t)
}
