package pebblekv

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/quilldb/quill/doc"
	"github.com/quilldb/quill/value"
)

func TestDBSetGetDelete(t *testing.T) {
	db, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.Set([]byte("hello"), []byte("world")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := db.Get([]byte("hello"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("world")) {
		t.Fatalf("Get = %q, want %q", got, "world")
	}

	got, err = db.Get([]byte("missing"))
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("Get missing = %q, want nil", got)
	}

	if err := db.Delete([]byte("hello")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ = db.Get([]byte("hello"))
	if got != nil {
		t.Fatalf("Get after Delete = %q, want nil", got)
	}

	t.Log("✓ Set, Get, Delete against pebble")
}

func TestCursorWalk(t *testing.T) {
	db, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	count := 20
	for i := range count {
		key := fmt.Appendf(nil, "key-%03d", i)
		if err := db.Set(key, []byte("x")); err != nil {
			t.Fatalf("Set[%d]: %v", i, err)
		}
	}

	cur, err := db.NewCursor()
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}
	defer cur.(*Cursor).Close()

	if err := cur.Seek([]byte("key-005")); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	seen := 5
	for !cur.Done() {
		want := fmt.Appendf(nil, "key-%03d", seen)
		if !bytes.Equal(cur.Key(), want) {
			t.Fatalf("Key = %q, want %q", cur.Key(), want)
		}
		seen++
		if err := cur.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if seen != count {
		t.Fatalf("walked to %d, want %d", seen, count)
	}

	t.Logf("✓ cursor walked keys %d..%d in order", 5, count-1)
}

// TestCollectionOnPebble runs the document layer end to end against the
// pebble engine.
func TestCollectionOnPebble(t *testing.T) {
	db, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	users := doc.Open("users", db)
	for _, name := range []string{"carol", "alice", "bob"} {
		if _, err := users.Insert(doc.Document{"_id": name}); err != nil {
			t.Fatalf("Insert(%s): %v", name, err)
		}
	}

	var got []string
	err = users.ForEach(func(d doc.Document) bool {
		got = append(got, d["_id"].(string))
		return true
	})
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	want := []string{"alice", "bob", "carol"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scan = %v, want %v", got, want)
		}
	}

	d, found, err := users.FindByID(value.String("bob"))
	if err != nil || !found {
		t.Fatalf("FindByID(bob) = %v, %v, %v", d, found, err)
	}

	t.Log("✓ document layer runs on pebble")
}
