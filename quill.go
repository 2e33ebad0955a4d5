// Package quill defines the shared contracts for building a document store
// on top of a flat, byte-ordered key-value engine.
//
// The engine side is abstracted as a Store (point lookup) plus a Cursor
// (ordered forward traversal). The document side, in package doc, scopes a
// Cursor to one collection's key range using stacked keys built by package
// stackkey.
package quill

// Store is a point-lookup handle into the underlying key-value engine.
// Cursors resolve values through an explicit Store handle rather than
// ambient state, so a cursor can outlive a particular read view.
type Store interface {
	// Get returns the value stored under key, or nil if the key is absent.
	// A nil value with a nil error means "no value", not a failure.
	Get(key []byte) (val []byte, err error)
}

// Cursor is a seekable forward cursor over a byte-ordered keyspace.
//
// A Cursor is single-position state and is not safe for concurrent use.
// Seek and Next report storage failures only; running off the end of the
// keyspace is signalled by Done, never by an error.
type Cursor interface {
	// Seek positions the cursor at the first entry with key >= key.
	Seek(key []byte) error

	// Next advances the cursor by one entry. Advancing past the end of the
	// keyspace is benign: the cursor stays exhausted.
	Next() error

	// Done reports whether the cursor has run off the end of the keyspace.
	Done() bool

	// Key returns the key at the current position, or nil when the cursor
	// is unpositioned or exhausted. The returned slice is valid only until
	// the next method call.
	Key() []byte

	// Value fetches the value at the current position through the given
	// store handle. A nil value with a nil error means the entry has no
	// value anymore (for example it was removed after the cursor observed
	// its key).
	Value(store Store) (val []byte, err error)
}
