package doc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/snappy"
)

// Document bodies are CBOR behind a one-byte codec tag. Bodies over the
// compression threshold are snappy-compressed when that actually saves
// space.
const (
	codecRaw    = 0x00
	codecSnappy = 0x01

	compressAt = 512
)

var (
	encMode, _ = cbor.CanonicalEncOptions().EncMode()
	decMode, _ = cbor.DecOptions{
		// Keep integers signed on the way out so round-tripped documents
		// compare equal to what was inserted.
		IntDec: cbor.IntDecConvertSigned,
	}.DecMode()
)

func marshalBody(d Document) ([]byte, error) {
	raw, err := encMode.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if len(raw) >= compressAt {
		packed := snappy.Encode(nil, raw)
		if len(packed) < len(raw) {
			return append([]byte{codecSnappy}, packed...), nil
		}
	}
	return append([]byte{codecRaw}, raw...), nil
}

func unmarshalBody(body []byte) (Document, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrBadDocument)
	}
	raw := body[1:]
	switch body[0] {
	case codecRaw:
	case codecSnappy:
		var err error
		raw, err = snappy.Decode(nil, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown codec 0x%02x", ErrBadDocument, body[0])
	}

	var d Document
	if err := decMode.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	return d, nil
}
