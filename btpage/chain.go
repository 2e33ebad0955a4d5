package btpage

import (
	"fmt"

	"github.com/quilldb/quill"
)

// PageStore materializes leaf page views by id.
type PageStore interface {
	// ReadPage returns the shared view of the page with the given id.
	ReadPage(id PageID) (*Node, error)
}

// Chain is an ordered cursor over a chain of leaf pages linked by right
// sibling ids, starting from a head page. It implements quill.Cursor using
// Refs for per-step bookkeeping, so several cursors can share one
// materialized page.
type Chain struct {
	pages PageStore
	head  PageID
	ref   Ref
	done  bool
}

// NewChain returns a cursor over the sibling chain starting at head. The
// cursor is unpositioned until the first Seek.
func NewChain(pages PageStore, head PageID) *Chain {
	return &Chain{pages: pages, head: head, done: true}
}

var _ quill.Cursor = (*Chain)(nil)

// Seek walks the chain from its head to the first entry with key >= key.
func (c *Chain) Seek(key []byte) error {
	c.ref = Ref{}
	c.done = true
	id := c.head
	for id != NilPage {
		node, err := c.pages.ReadPage(id)
		if err != nil {
			return fmt.Errorf("%w: page %d: %w", ErrBadPage, id, err)
		}
		index, count := node.search(key)
		if index < count {
			c.ref = NewRef(node, index)
			c.done = false
			return nil
		}
		id = node.Right()
	}
	return nil
}

// Next advances one entry, hopping to the right sibling page when the
// current node is exhausted.
func (c *Chain) Next() error {
	if c.done {
		return nil
	}
	ref := c.ref.Next()
	for ref.Done() {
		id := ref.RightPID()
		if id == NilPage {
			c.ref = Ref{}
			c.done = true
			return nil
		}
		node, err := c.pages.ReadPage(id)
		if err != nil {
			return fmt.Errorf("%w: page %d: %w", ErrBadPage, id, err)
		}
		ref = NewRef(node, 0)
	}
	c.ref = ref
	return nil
}

// Done reports whether the cursor has run off the end of the chain.
func (c *Chain) Done() bool {
	if c.done {
		return true
	}
	// The shared node view may have shrunk since the last advance.
	if _, ok := c.ref.Entry(); !ok {
		return true
	}
	return false
}

// Key returns the key at the current position, or nil when exhausted.
func (c *Chain) Key() []byte {
	e, ok := c.ref.Entry()
	if c.done || !ok {
		return nil
	}
	return e.Key
}

// Value returns the current entry's value. Inline values come straight from
// the page view; overflow values resolve through the store handle.
func (c *Chain) Value(store quill.Store) (val []byte, err error) {
	e, ok := c.ref.Entry()
	if c.done || !ok {
		return nil, nil
	}
	if e.Overflow {
		return store.Get(e.Key)
	}
	return e.Val, nil
}
