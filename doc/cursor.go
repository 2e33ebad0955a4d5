// Package doc implements the document layer: prefix-scoped cursors that
// scope a flat byte-ordered keyspace into per-collection key ranges, and
// collections built on top of them.
package doc

import (
	"bytes"

	"github.com/quilldb/quill"
	"github.com/quilldb/quill/stackkey"
	"github.com/quilldb/quill/value"
)

// Cursor binds a logical prefix (a collection identifier) to an ordered
// cursor over the underlying keyspace and guarantees that iteration never
// escapes the prefix's key range.
//
// currentKey mirrors the underlying cursor's position. It is a cache, not a
// second source of truth: every seek or advance refreshes it from the
// underlying cursor, unconditionally. nil means unpositioned or exhausted.
//
// A Cursor is not safe for concurrent use: a seek and the read-back of the
// resulting position are two separate steps on the underlying cursor.
type Cursor struct {
	prefix      value.Value
	prefixBytes []byte
	kv          quill.Cursor
	currentKey  []byte
}

// NewCursor binds prefix to an ordered cursor. The prefix is encoded once,
// up front; an unencodable prefix is a construction error.
func NewCursor(prefix value.Value, kv quill.Cursor) (*Cursor, error) {
	prefixBytes, err := stackkey.Encode(prefix)
	if err != nil {
		return nil, err
	}
	return &Cursor{
		prefix:      prefix,
		prefixBytes: prefixBytes,
		kv:          kv,
	}, nil
}

// Prefix returns the prefix value the cursor is scoped to.
func (c *Cursor) Prefix() value.Value {
	return c.prefix
}

// Reset positions the cursor at the start of the prefix's key range: the
// first entry with key >= the stacked key of [prefix].
func (c *Cursor) Reset() error {
	if err := c.kv.Seek(c.prefixBytes); err != nil {
		return err
	}
	c.refresh()
	return nil
}

// ResetByPKey positions the cursor at the first entry with key >= the
// stacked key of [prefix, pkey] and reports whether the landing position is
// an exact byte match. A non-exact landing, including end-of-store, is
// found=false, not an error; the cursor stays parked at the landing
// position, which is the insertion point for pkey.
func (c *Cursor) ResetByPKey(pkey value.Value) (found bool, err error) {
	key, err := stackkey.Encode(c.prefix, pkey)
	if err != nil {
		return false, err
	}
	if err := c.kv.Seek(key); err != nil {
		return false, err
	}
	c.refresh()
	if c.currentKey == nil {
		return false, nil
	}
	return bytes.Equal(c.currentKey, key), nil
}

// PeekData returns the value at the current position, fetched through the
// given store handle. It returns nil when the cursor is unpositioned or has
// walked past the end of the prefix's range; that is the normal end-of-range
// signal, not an error.
func (c *Cursor) PeekData(store quill.Store) (data []byte, err error) {
	if c.currentKey == nil || !bytes.HasPrefix(c.currentKey, c.prefixBytes) {
		return nil, nil
	}
	return c.kv.Value(store)
}

// HasNext reports whether the current position is still inside the prefix's
// key range. The prefix check is re-derived from currentKey on every call;
// nothing is cached across calls.
func (c *Cursor) HasNext() bool {
	if c.kv.Done() {
		return false
	}
	if c.currentKey != nil && !bytes.HasPrefix(c.currentKey, c.prefixBytes) {
		return false
	}
	return true
}

// Next advances the underlying cursor one entry and refreshes the mirrored
// position. It does not enforce the prefix boundary itself: callers check
// HasNext (or a nil PeekData) before trusting the new position.
func (c *Cursor) Next() error {
	if err := c.kv.Next(); err != nil {
		return err
	}
	c.refresh()
	return nil
}

// UpdateCurrent would rewrite the document at the current position in
// place. It is deliberately unsupported: rewriting under a live cursor needs
// either delete-and-reinsert or copy-on-write page replacement, and neither
// is implemented. The call always fails; it is never a silent no-op.
func (c *Cursor) UpdateCurrent(d Document) error {
	return ErrCursorUpdate
}

// refresh copies the underlying cursor's position into currentKey. The
// underlying key slice is only valid until the cursor's next move, so the
// cursor owns its copy.
func (c *Cursor) refresh() {
	key := c.kv.Key()
	if key == nil {
		c.currentKey = nil
		return
	}
	c.currentKey = append(c.currentKey[:0], key...)
}
