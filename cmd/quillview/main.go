// quillview is a simple CLI tool for browsing quill document stores backed
// by a pebble directory.
//
// Usage:
//
//	quillview <dir>                 # list all entries, decoded keys
//	quillview -n 20 <dir>           # list first 20 entries
//	quillview -c users <dir>        # list documents in one collection
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quilldb/quill/doc"
	"github.com/quilldb/quill/pebblekv"
	"github.com/quilldb/quill/stackkey"
)

func main() {
	countFlag := flag.Int("n", 0, "number of entries (0 = all)")
	collFlag := flag.String("c", "", "collection to list documents from")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: quillview [-n count] [-c collection] <dir>")
		os.Exit(1)
	}

	db, err := pebblekv.Open(flag.Arg(0), &pebblekv.Options{ReadOnly: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if *collFlag != "" {
		err = listCollection(db, *collFlag, *countFlag)
	} else {
		err = listKeys(db, *countFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func listCollection(db *pebblekv.DB, name string, count int) error {
	coll := doc.Open(name, db)
	n := 0
	err := coll.ForEach(func(d doc.Document) bool {
		fmt.Printf("%v\n", d)
		n++
		return count == 0 || n < count
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d document(s) in %q\n", n, name)
	return nil
}

func listKeys(db *pebblekv.DB, count int) error {
	cur, err := db.NewCursor()
	if err != nil {
		return err
	}
	defer cur.(interface{ Close() error }).Close()

	if err := cur.Seek(nil); err != nil {
		return err
	}
	n := 0
	for !cur.Done() {
		key := cur.Key()
		val, err := cur.Value(db)
		if err != nil {
			return err
		}
		fmt.Printf("%s  (%d bytes)\n", renderKey(key), len(val))
		n++
		if count != 0 && n >= count {
			break
		}
		if err := cur.Next(); err != nil {
			return err
		}
	}
	fmt.Printf("%d entr%s\n", n, plural(n))
	return nil
}

func renderKey(key []byte) string {
	vs, err := stackkey.Decode(key)
	if err != nil {
		return fmt.Sprintf("0x%x", key)
	}
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += " / "
		}
		s += v.String()
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
