// Package cursor provides compositions of the quill.Cursor contract.
package cursor

import (
	"bytes"

	"github.com/quilldb/quill"
)

// Merge merges two ordered cursors into one, the way a multi-level store
// reads a newer level on top of an older one. The over cursor shadows the
// base cursor on equal keys.
//
// Merge is forward-only: Seek and Next are the only movements. Each child
// owns its position; Merge derives which child is current from the child
// keys on demand and caches nothing.
type Merge struct {
	over quill.Cursor
	base quill.Cursor
}

// NewMerge returns a merge of over on top of base.
func NewMerge(over, base quill.Cursor) *Merge {
	return &Merge{over: over, base: base}
}

// Over returns the overlay cursor.
func (m *Merge) Over() quill.Cursor {
	return m.over
}

// Base returns the base cursor.
func (m *Merge) Base() quill.Cursor {
	return m.base
}

// Cover reports whether the current entry comes from the overlay cursor.
func (m *Merge) Cover() bool {
	cover, _ := m.active()
	return cover
}

var _ quill.Cursor = (*Merge)(nil)

// Seek positions both children at the first entry with key >= key.
func (m *Merge) Seek(key []byte) error {
	if err := m.over.Seek(key); err != nil {
		return err
	}
	return m.base.Seek(key)
}

// Next advances past the current entry. When both children stand on the
// same key, both advance, so the shadowed base entry is never surfaced.
func (m *Merge) Next() error {
	if m.Done() {
		return nil
	}
	cover, same := m.active()
	if same {
		if err := m.over.Next(); err != nil {
			return err
		}
		return m.base.Next()
	}
	if cover {
		return m.over.Next()
	}
	return m.base.Next()
}

// Done reports whether both children are exhausted.
func (m *Merge) Done() bool {
	return m.over.Done() && m.base.Done()
}

// Key returns the smaller of the two child keys, or nil when exhausted.
func (m *Merge) Key() []byte {
	if m.Done() {
		return nil
	}
	if cover, _ := m.active(); cover {
		return m.over.Key()
	}
	return m.base.Key()
}

// Value fetches the current entry's value from the child that owns it.
func (m *Merge) Value(store quill.Store) (val []byte, err error) {
	if m.Done() {
		return nil, nil
	}
	if cover, _ := m.active(); cover {
		return m.over.Value(store)
	}
	return m.base.Value(store)
}

// active decides which child holds the current entry. same means both
// children stand on equal keys (the overlay wins but both must advance).
func (m *Merge) active() (cover, same bool) {
	if m.base.Done() {
		return true, false
	}
	if m.over.Done() {
		return false, false
	}
	cmp := bytes.Compare(m.over.Key(), m.base.Key())
	return cmp <= 0, cmp == 0
}
