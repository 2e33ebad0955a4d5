// Package value defines the document value model: the tagged union of scalar
// types a document's fields and primary keys may take, together with the
// total order the stacked-key encoding must preserve.
package value

import (
	"fmt"

	"github.com/google/uuid"
)

// Type identifies the concrete type held by a Value. The numeric values are
// the wire tags used by the stacked-key encoding; they are spaced out so new
// types can be added without reordering existing keys on disk.
type Type uint8

const (
	TypeNull     Type = 0x05
	TypeBool     Type = 0x10
	TypeInt      Type = 0x18
	TypeDouble   Type = 0x20
	TypeString   Type = 0x28
	TypeBinary   Type = 0x30
	TypeObjectID Type = 0x38
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeBinary:
		return "binary"
	case TypeObjectID:
		return "objectid"
	}
	return fmt.Sprintf("type(0x%02x)", uint8(t))
}

// Value is one document-model scalar. The zero Value is Null.
type Value struct {
	t   Type
	b   bool
	i   int64
	f   float64
	s   string
	raw []byte
	id  uuid.UUID
}

// Null returns the null value.
func Null() Value {
	return Value{t: TypeNull}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{t: TypeBool, b: v}
}

// Int returns a 64-bit integer value.
func Int(v int64) Value {
	return Value{t: TypeInt, i: v}
}

// Double returns a 64-bit float value. NaN is representable here but has no
// canonical key encoding; stackkey.Append rejects it.
func Double(v float64) Value {
	return Value{t: TypeDouble, f: v}
}

// String returns a string value.
func String(s string) Value {
	return Value{t: TypeString, s: s}
}

// Binary returns a byte-string value. The slice is referenced, not copied.
func Binary(b []byte) Value {
	return Value{t: TypeBinary, raw: b}
}

// ObjectID returns an object-id value.
func ObjectID(id uuid.UUID) Value {
	return Value{t: TypeObjectID, id: id}
}

// NewObjectID returns a freshly generated object-id value.
func NewObjectID() Value {
	return ObjectID(uuid.New())
}

// Type returns the concrete type of the value.
func (v Value) Type() Type {
	if v.t == 0 {
		return TypeNull
	}
	return v.t
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.Type() == TypeNull
}

// BoolVal returns the boolean payload. Meaningful only for TypeBool.
func (v Value) BoolVal() bool {
	return v.b
}

// Int64 returns the integer payload. Meaningful only for TypeInt.
func (v Value) Int64() int64 {
	return v.i
}

// Float64 returns the float payload. Meaningful only for TypeDouble.
func (v Value) Float64() float64 {
	return v.f
}

// Str returns the string payload. Meaningful only for TypeString.
func (v Value) Str() string {
	return v.s
}

// Bytes returns the byte-string payload. Meaningful only for TypeBinary.
func (v Value) Bytes() []byte {
	return v.raw
}

// UUID returns the object-id payload. Meaningful only for TypeObjectID.
func (v Value) UUID() uuid.UUID {
	return v.id
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Type() {
	case TypeNull:
		return "null"
	case TypeBool:
		return fmt.Sprintf("%t", v.b)
	case TypeInt:
		return fmt.Sprintf("%d", v.i)
	case TypeDouble:
		return fmt.Sprintf("%g", v.f)
	case TypeString:
		return fmt.Sprintf("%q", v.s)
	case TypeBinary:
		return fmt.Sprintf("0x%x", v.raw)
	case TypeObjectID:
		return v.id.String()
	}
	return v.Type().String()
}
