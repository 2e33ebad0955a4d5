package pebblekv

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/quilldb/quill"
)

// NewCursor returns an unpositioned cursor over a snapshot of the store.
// The caller must Close the cursor when finished with it.
func (d *DB) NewCursor() (quill.Cursor, error) {
	iter, err := d.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("pebblekv: cursor: %w", err)
	}
	return &Cursor{iter: iter, done: true}, nil
}

// Cursor adapts a pebble iterator to the quill.Cursor contract.
type Cursor struct {
	iter *pebble.Iterator
	done bool
}

var _ quill.Cursor = (*Cursor)(nil)

// Seek positions the cursor at the first key >= key.
func (c *Cursor) Seek(key []byte) error {
	c.done = !c.iter.SeekGE(key)
	if err := c.iter.Error(); err != nil {
		c.done = true
		return fmt.Errorf("pebblekv: seek: %w", err)
	}
	return nil
}

// Next advances the cursor by one entry. Advancing an exhausted cursor is a
// no-op.
func (c *Cursor) Next() error {
	if c.done {
		return nil
	}
	c.done = !c.iter.Next()
	if err := c.iter.Error(); err != nil {
		c.done = true
		return fmt.Errorf("pebblekv: next: %w", err)
	}
	return nil
}

// Done reports whether the cursor has run off the end of the keyspace.
func (c *Cursor) Done() bool {
	return c.done
}

// Key returns the key at the current position, or nil when exhausted.
// The returned slice is valid only until the next method call.
func (c *Cursor) Key() []byte {
	if c.done {
		return nil
	}
	return c.iter.Key()
}

// Value fetches the value at the current position through the given store
// handle. The read goes through the handle rather than the iterator
// snapshot, so a key deleted since the cursor observed it yields no value.
func (c *Cursor) Value(store quill.Store) (val []byte, err error) {
	if c.done {
		return nil, nil
	}
	return store.Get(c.iter.Key())
}

// Close releases the iterator.
func (c *Cursor) Close() error {
	return c.iter.Close()
}
