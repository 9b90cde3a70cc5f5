// Package gcerrors holds the sentinel error values shared by the public
// API and every internal package that needs to return one of them,
// avoiding an import cycle between the root package and its internals.
//
// These map 1:1 to the GEOCON_ERR_* codes of the original C reference
// implementation's error taxonomy.
package gcerrors

import "github.com/pkg/errors"

var (
	ErrNoMemory          = errors.New("geocon: no memory")
	ErrIOError           = errors.New("geocon: i/o error")
	ErrNullParameter     = errors.New("geocon: null parameter")
	ErrInvalidExtent     = errors.New("geocon: invalid extent")
	ErrFileNotFound      = errors.New("geocon: file not found")
	ErrInvalidFile       = errors.New("geocon: invalid file")
	ErrCannotOpenFile    = errors.New("geocon: cannot open file")
	ErrUnknownFiletype   = errors.New("geocon: unknown filetype")
	ErrUnexpectedEOF     = errors.New("geocon: unexpected eof")
	ErrInvalidTokenCount = errors.New("geocon: invalid token count")
)
