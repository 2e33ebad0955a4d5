package doc

import (
	"fmt"

	"github.com/quilldb/quill"
)

var (
	ErrBadDocument = quill.ErrBadDocument

	// ErrCursorUpdate is returned by Cursor.UpdateCurrent, always.
	ErrCursorUpdate = fmt.Errorf("%w: in-place cursor update", quill.ErrUnsupported)
)
