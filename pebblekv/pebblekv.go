// Package pebblekv adapts cockroachdb/pebble, an LSM storage engine, to the
// quill engine contract: point lookups through quill.Store and ordered
// traversal through quill.Cursor.
package pebblekv

import (
	"fmt"

	"github.com/cockroachdb/pebble"
)

// Options tunes the underlying pebble instance. The zero value picks
// defaults sized for a small embedded store.
type Options struct {
	// MemTableSize is the size of one memtable in bytes.
	MemTableSize uint64
	// ReadOnly opens the store without write access.
	ReadOnly bool
}

func (o *Options) pebble() *pebble.Options {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}
	if o != nil {
		if o.MemTableSize != 0 {
			opts.MemTableSize = o.MemTableSize
		}
		opts.ReadOnly = o.ReadOnly
	}
	return opts
}

// DB is a pebble-backed key-value store.
type DB struct {
	db *pebble.DB
}

// Open opens (or creates) a store at the given directory path.
func Open(dir string, opts *Options) (*DB, error) {
	db, err := pebble.Open(dir, opts.pebble())
	if err != nil {
		return nil, fmt.Errorf("pebblekv: open: %w", err)
	}
	return &DB{db: db}, nil
}

// Close shuts the store down, flushing in-memory state.
func (d *DB) Close() error {
	return d.db.Close()
}

// Get returns the value stored under key, or nil if the key is absent.
func (d *DB) Get(key []byte) (val []byte, err error) {
	raw, closer, err := d.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pebblekv: get: %w", err)
	}
	// raw is only valid until closer.Close(), so copy it out.
	val = make([]byte, len(raw))
	copy(val, raw)
	closer.Close()
	return val, nil
}

// Set stores val under key.
func (d *DB) Set(key, val []byte) error {
	if err := d.db.Set(key, val, pebble.NoSync); err != nil {
		return fmt.Errorf("pebblekv: set: %w", err)
	}
	return nil
}

// Delete removes key from the store.
func (d *DB) Delete(key []byte) error {
	if err := d.db.Delete(key, pebble.NoSync); err != nil {
		return fmt.Errorf("pebblekv: delete: %w", err)
	}
	return nil
}
