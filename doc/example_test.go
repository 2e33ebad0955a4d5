package doc_test

import (
	"fmt"

	"github.com/quilldb/quill/doc"
	"github.com/quilldb/quill/memtable"
	"github.com/quilldb/quill/value"
)

func Example() {
	// An in-memory engine; pebblekv.Open works the same way.
	table := memtable.New()

	users := doc.Open("users", table)
	users.Insert(doc.Document{"_id": "alice", "age": int64(30)})
	users.Insert(doc.Document{"_id": "bob", "age": int64(25)})

	// Point lookup by primary key.
	d, found, _ := users.FindByID(value.String("alice"))
	fmt.Println("alice found:", found, "age:", d["age"])

	// Ordered scan, scoped to this collection only.
	orders := doc.Open("orders", table)
	orders.Insert(doc.Document{"_id": int64(1), "total": int64(99)})

	users.ForEach(func(d doc.Document) bool {
		fmt.Println("user:", d["_id"])
		return true
	})

	// Output:
	// alice found: true age: 30
	// user: alice
	// user: bob
}

func ExampleCursor() {
	table := memtable.New()
	users := doc.Open("users", table)
	users.Insert(doc.Document{"_id": int64(1), "name": "first"})
	users.Insert(doc.Document{"_id": int64(2), "name": "second"})

	cur, _ := users.NewCursor()

	// Point positioning: exact match reporting.
	found, _ := cur.ResetByPKey(value.Int(2))
	fmt.Println("pkey 2 found:", found)
	found, _ = cur.ResetByPKey(value.Int(3))
	fmt.Println("pkey 3 found:", found)

	// Range positioning: walk the whole collection.
	cur.Reset()
	n := 0
	for cur.HasNext() {
		data, _ := cur.PeekData(table)
		if data == nil {
			break
		}
		n++
		cur.Next()
	}
	fmt.Println("documents:", n)

	// Output:
	// pkey 2 found: true
	// pkey 3 found: false
	// documents: 2
}
