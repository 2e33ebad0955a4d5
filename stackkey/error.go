package stackkey

import "github.com/quilldb/quill"

var (
	ErrUnencodable = quill.ErrUnencodable
	ErrBadKey      = quill.ErrBadKey
)
