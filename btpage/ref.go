package btpage

// Ref is a shared handle into one materialized page view: the node plus a
// position index. Multiple traversal contexts may hold Refs into the same
// Node; each access takes the node's lock for the duration of the read only,
// never across I/O.
type Ref struct {
	node  *Node
	index int
}

// NewRef returns a handle positioned at index within node.
func NewRef(node *Node, index int) Ref {
	return Ref{node: node, index: index}
}

// Done reports whether the tracked index has reached or passed the node's
// entry count.
func (r Ref) Done() bool {
	if r.node == nil {
		return true
	}
	return r.index >= r.node.Len()
}

// RightPID returns the page id to continue traversal into once this node is
// exhausted.
func (r Ref) RightPID() PageID {
	if r.node == nil {
		return NilPage
	}
	return r.node.Right()
}

// Next returns a handle to the following slot in the same node.
func (r Ref) Next() Ref {
	return Ref{node: r.node, index: r.index + 1}
}

// Entry returns a copy of the referenced entry, or ok=false when the handle
// is past the end of the node.
func (r Ref) Entry() (e Entry, ok bool) {
	if r.node == nil {
		return Entry{}, false
	}
	return r.node.entry(r.index)
}
