// Package memtable provides an in-memory, byte-ordered store backed by an
// in-memory B-tree. It implements both sides of the engine contract: the
// quill.Store point-lookup handle and a seekable quill.Cursor, which makes
// it the reference engine for the document layer and its tests.
package memtable

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"github.com/quilldb/quill"
)

const degree = 32

type entry struct {
	key, val []byte
}

func entryLess(a, b entry) bool {
	return bytes.Compare(a.key, b.key) < 0
}

// Table is a byte-ordered in-memory key-value table. Safe for concurrent
// use; cursors obtained from it observe mutations made after their creation.
type Table struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[entry]
}

// New returns an empty table.
func New() *Table {
	return &Table{tree: btree.NewG(degree, entryLess)}
}

// Set stores val under key, replacing any previous value. Key and value
// bytes are copied.
func (t *Table) Set(key, val []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.ReplaceOrInsert(entry{
		key: bytes.Clone(key),
		val: bytes.Clone(val),
	})
	return nil
}

// Get returns the value stored under key, or nil if the key is absent.
func (t *Table) Get(key []byte) (val []byte, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, found := t.tree.Get(entry{key: key})
	if !found {
		return nil, nil
	}
	return bytes.Clone(e.val), nil
}

// Delete removes key from the table. Deleting an absent key is a no-op.
func (t *Table) Delete(key []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Delete(entry{key: key})
	return nil
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Len()
}

// NewCursor returns an unpositioned cursor over the table.
func (t *Table) NewCursor() (quill.Cursor, error) {
	return &Cursor{table: t, done: true}, nil
}

var _ quill.Store = (*Table)(nil)

// Cursor is a forward cursor over a Table. Each movement re-enters the tree
// from the cursor's own key copy, so the cursor stays well-defined while the
// table mutates underneath it.
type Cursor struct {
	table *Table
	key   []byte
	done  bool
}

var _ quill.Cursor = (*Cursor)(nil)

// Seek positions the cursor at the first key >= key.
func (c *Cursor) Seek(key []byte) error {
	c.position(key, false)
	return nil
}

// Next advances the cursor to the next key strictly greater than the
// current one. Advancing an exhausted cursor is a no-op.
func (c *Cursor) Next() error {
	if c.done {
		return nil
	}
	c.position(c.key, true)
	return nil
}

// Done reports whether the cursor has run off the end of the table.
func (c *Cursor) Done() bool {
	return c.done
}

// Key returns the key at the current position, or nil when exhausted.
func (c *Cursor) Key() []byte {
	if c.done {
		return nil
	}
	return c.key
}

// Value fetches the value at the current position through the given store
// handle. The read is fresh: a key removed since the cursor observed it
// yields no value.
func (c *Cursor) Value(store quill.Store) (val []byte, err error) {
	if c.done {
		return nil, nil
	}
	return store.Get(c.key)
}

// position lands the cursor on the first key >= pivot, or strictly > pivot
// when skipEqual is set.
func (c *Cursor) position(pivot []byte, skipEqual bool) {
	t := c.table
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := false
	t.tree.AscendGreaterOrEqual(entry{key: pivot}, func(e entry) bool {
		if skipEqual && bytes.Equal(e.key, pivot) {
			return true
		}
		c.key = append(c.key[:0], e.key...)
		found = true
		return false
	})
	c.done = !found
}
