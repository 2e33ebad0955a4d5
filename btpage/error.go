package btpage

import "github.com/quilldb/quill"

var ErrBadPage = quill.ErrBadPage
