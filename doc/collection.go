package doc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/quilldb/quill"
	"github.com/quilldb/quill/stackkey"
	"github.com/quilldb/quill/value"
)

// Document is a decoded document body.
type Document = map[string]any

// KV is the engine surface a collection needs: point lookup, mutation, and
// ordered traversal. memtable.Table and pebblekv.DB both satisfy it.
type KV interface {
	quill.Store
	Set(key, val []byte) error
	Delete(key []byte) error
	NewCursor() (quill.Cursor, error)
}

// Collection is a named set of documents sharing one key prefix in the
// underlying keyspace. Documents are keyed by the stacked key of
// [collection name, primary key].
type Collection struct {
	name string
	kv   KV
}

// Open binds a collection name to an engine. No keys are touched until the
// first operation.
func Open(name string, kv KV) *Collection {
	return &Collection{name: name, kv: kv}
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// NewCursor returns a prefix-scoped cursor over the collection's key range,
// unpositioned until the first Reset or ResetByPKey.
func (c *Collection) NewCursor() (*Cursor, error) {
	kv, err := c.kv.NewCursor()
	if err != nil {
		return nil, err
	}
	return NewCursor(value.String(c.name), kv)
}

// Insert stores a document. When the document has no _id field one is
// generated and written back into the document. The primary key, explicit
// or generated, is returned.
func (c *Collection) Insert(d Document) (pkey value.Value, err error) {
	raw, ok := d["_id"]
	if ok {
		pkey, err = asValue(raw)
		if err != nil {
			return value.Value{}, err
		}
	} else {
		pkey = value.NewObjectID()
		d["_id"] = pkey.UUID()
	}

	key, err := stackkey.Encode(value.String(c.name), pkey)
	if err != nil {
		return value.Value{}, err
	}
	body, err := marshalBody(d)
	if err != nil {
		return value.Value{}, err
	}
	if err := c.kv.Set(key, body); err != nil {
		return value.Value{}, err
	}
	return pkey, nil
}

// FindByID looks up the document with the given primary key. A miss is
// (nil, false, nil), not an error.
func (c *Collection) FindByID(pkey value.Value) (d Document, found bool, err error) {
	cur, err := c.NewCursor()
	if err != nil {
		return nil, false, err
	}
	defer closeCursor(cur)

	found, err = cur.ResetByPKey(pkey)
	if err != nil || !found {
		return nil, false, err
	}
	raw, err := cur.PeekData(c.kv)
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		// Removed between the seek and the value fetch.
		return nil, false, nil
	}
	d, err = unmarshalBody(raw)
	if err != nil {
		return nil, false, err
	}
	return d, true, nil
}

// Delete removes the document with the given primary key. Reports whether a
// document was actually removed.
func (c *Collection) Delete(pkey value.Value) (found bool, err error) {
	key, err := stackkey.Encode(value.String(c.name), pkey)
	if err != nil {
		return false, err
	}
	val, err := c.kv.Get(key)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, nil
	}
	if err := c.kv.Delete(key); err != nil {
		return false, err
	}
	return true, nil
}

// ForEach walks the collection in ascending primary-key order, calling fn
// for each document until fn returns false or the range ends.
func (c *Collection) ForEach(fn func(d Document) bool) error {
	cur, err := c.NewCursor()
	if err != nil {
		return err
	}
	defer closeCursor(cur)

	if err := cur.Reset(); err != nil {
		return err
	}
	for cur.HasNext() {
		raw, err := cur.PeekData(c.kv)
		if err != nil {
			return err
		}
		if raw == nil {
			break
		}
		d, err := unmarshalBody(raw)
		if err != nil {
			return err
		}
		if !fn(d) {
			break
		}
		if err := cur.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of documents in the collection.
func (c *Collection) Count() (n int, err error) {
	err = c.ForEach(func(Document) bool {
		n++
		return true
	})
	return n, err
}

// asValue maps a native Go scalar to a document value, for primary keys
// carried inside a document's _id field.
func asValue(x any) (value.Value, error) {
	switch v := x.(type) {
	case value.Value:
		return v, nil
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(v), nil
	case int:
		return value.Int(int64(v)), nil
	case int32:
		return value.Int(int64(v)), nil
	case int64:
		return value.Int(v), nil
	case float64:
		return value.Double(v), nil
	case string:
		return value.String(v), nil
	case []byte:
		return value.Binary(v), nil
	case uuid.UUID:
		return value.ObjectID(v), nil
	}
	return value.Value{}, fmt.Errorf("%w: _id of type %T", ErrBadDocument, x)
}

// closeCursor releases the underlying engine cursor when the engine hands
// out closable ones (pebblekv does, memtable does not).
func closeCursor(cur *Cursor) {
	if closer, ok := cur.kv.(interface{ Close() error }); ok {
		closer.Close()
	}
}
