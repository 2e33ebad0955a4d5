// Package btpage models point-in-time views of B-tree leaf pages and the
// shared handles the traversal layer uses to walk sibling chains without
// re-fetching pages.
package btpage

import (
	"sort"
	"sync"
)

// PageID identifies a page in the page store. NilPage terminates a sibling
// chain.
type PageID uint32

const NilPage PageID = 0

// Entry is one key-value slot in a leaf page view. An overflow entry carries
// no inline value; its value is resolved through the store handle at read
// time.
type Entry struct {
	Key      []byte
	Val      []byte
	Overflow bool
}

// Node is a materialized leaf page view: sorted entries plus the id of the
// right sibling page. A Node is shared between traversal contexts and
// guarded by an internal mutex; writers replace the whole view with Swap
// rather than editing entries in place, so every read under the lock sees a
// consistent snapshot.
type Node struct {
	mu      sync.Mutex
	entries []Entry
	right   PageID
}

// NewNode returns a node view over the given sorted entries.
func NewNode(entries []Entry, right PageID) *Node {
	return &Node{entries: entries, right: right}
}

// Len returns the entry count.
func (n *Node) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.entries)
}

// Right returns the right sibling page id.
func (n *Node) Right() PageID {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.right
}

// Swap replaces the node view. Used by writers publishing a newer version of
// the page.
func (n *Node) Swap(entries []Entry, right PageID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = entries
	n.right = right
}

// search returns the index of the first entry with key >= key and the entry
// count, both read under one lock acquisition.
func (n *Node) search(key []byte) (index, count int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	count = len(n.entries)
	index = sort.Search(count, func(i int) bool {
		return string(n.entries[i].Key) >= string(key)
	})
	return index, count
}

// entry returns a copy of the entry at index, or ok=false when the index has
// run past the entry count.
func (n *Node) entry(index int) (e Entry, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if index < 0 || index >= len(n.entries) {
		return Entry{}, false
	}
	return n.entries[index], true
}
