package quill

import "errors"

var (
	ErrClosed      = errors.New("closed")
	ErrUnsupported = errors.New("unsupported")
	ErrUnencodable = errors.New("unencodable key value")
	ErrBadKey      = errors.New("bad key")
	ErrBadPage     = errors.New("bad page")
	ErrBadDocument = errors.New("bad document")
)
