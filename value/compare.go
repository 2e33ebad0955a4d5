package value

import (
	"bytes"
	"math"
	"strings"
)

// Compare orders two values. Values of different types order by type tag
// (null < bool < int < double < string < binary < objectid); values of the
// same type order by their natural payload order. The result agrees with the
// byte order of the stacked-key encoding, which is what makes range scans
// over encoded keys correct.
func Compare(a, b Value) int {
	at, bt := a.Type(), b.Type()
	if at != bt {
		if at < bt {
			return -1
		}
		return 1
	}

	switch at {
	case TypeNull:
		return 0
	case TypeBool:
		return boolCompare(a.b, b.b)
	case TypeInt:
		return intCompare(a.i, b.i)
	case TypeDouble:
		return uint64Compare(doubleOrd(a.f), doubleOrd(b.f))
	case TypeString:
		return strings.Compare(a.s, b.s)
	case TypeBinary:
		return bytes.Compare(a.raw, b.raw)
	case TypeObjectID:
		return bytes.Compare(a.id[:], b.id[:])
	}
	return 0
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func intCompare(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func uint64Compare(a, b uint64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// doubleOrd maps a float to an unsigned integer whose natural order matches
// IEEE-754 total order on the reals: negatives get all bits inverted,
// non-negatives get the sign bit set. -0.0 orders just below +0.0.
func doubleOrd(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}
	return bits | (1 << 63)
}
